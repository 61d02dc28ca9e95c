// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import "fmt"

// SyntaxError reports a malformed expression: the wrong number of
// fields, bad separators, or a token that is neither the wildcard nor a
// decimal value. Column is 1-indexed; it is 0 when the problem is not
// attributable to a single field (for example a wrong field count).
type SyntaxError struct {
	Expression string
	Column     int
	Token      string
	Reason     string
}

func (e *SyntaxError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("cron: invalid expression %q: %s", e.Expression, e.Reason)
	}
	return fmt.Sprintf("cron: invalid token %q (col %d): %s", e.Token, e.Column, e.Reason)
}

// RangeError reports a well-formed value outside its field's bounds, or
// a list with more entries than the grammar allows. Column is 1-indexed.
type RangeError struct {
	Expression string
	Column     int
	Field      Field
	Value      int
	Minimum    int
	Maximum    int

	// ListLength is non-zero when the list itself is too long rather
	// than one of its values being out of bounds. Minimum and Maximum
	// then describe the permitted list length.
	ListLength int
}

func (e *RangeError) Error() string {
	if e.ListLength > 0 {
		return fmt.Sprintf("cron: invalid value found (col %d): %s list has %d values, at most %d allowed",
			e.Column, e.Field, e.ListLength, e.Maximum)
	}
	return fmt.Sprintf("cron: invalid value found (col %d): %s %d out of range [%d-%d]",
		e.Column, e.Field, e.Value, e.Minimum, e.Maximum)
}

// UnsupportedFormatError reports a syntactically valid expression whose
// shape is not one of the six supported categories, or which carries a
// list outside the category's frequency field.
type UnsupportedFormatError struct {
	Expression string
	Shape      Shape
	Reason     string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cron: valid but unsupported cron format %q: %s", e.Expression, e.Reason)
	}
	return fmt.Sprintf("cron: valid but unsupported cron format %q (shape %s)", e.Expression, e.Shape)
}
