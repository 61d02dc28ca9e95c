// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP response helpers.
//
// Every helper bounds how much of a response body it reads, so a
// misbehaving save endpoint cannot make the editor allocate without
// limit or hang draining an endless body.
package netutil

import (
	"io"
	"strings"
)

// MaxErrorBodySize bounds how much of an error response is kept for
// diagnostics.
const MaxErrorBodySize int64 = 4 << 10

// MaxDrainSize bounds how much of a response body Drain discards.
// Bodies up to this size are read to the end, which lets the HTTP
// client reuse the connection.
const MaxDrainSize int64 = 64 << 10

// ErrorBody reads an HTTP error response body and returns it, trimmed
// of surrounding whitespace, for diagnostic messages. Read errors are
// silently ignored: a partial or empty body is still useful.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxErrorBodySize))
	return strings.TrimSpace(string(data))
}

// Drain discards up to MaxDrainSize bytes of body.
func Drain(body io.Reader) {
	io.Copy(io.Discard, io.LimitReader(body, MaxDrainSize))
}
