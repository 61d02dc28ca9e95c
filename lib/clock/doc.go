// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// The editor's animations (dialog transitions and the glow on a label
// that just changed) are functions of the current time. Widgets read
// the time from a Clock instead of calling time.Now, so tests can
// freeze it and step it forward:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	widget, err := cronui.New(cronui.Options{Clock: c})
//	c.Advance(2 * time.Second) // the glow has decayed
//
// In production, Real() provides the standard library behavior.
package clock
