// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"math"
	"strconv"
	"strings"
)

// Field identifies one of the five cron fields, in expression order.
type Field int

const (
	Minute Field = iota
	Hour
	DayOfMonth
	Month
	DayOfWeek
)

// fieldCount is the number of fields in every expression.
const fieldCount = 5

// Wildcard is the token meaning "every value" for a field.
const Wildcard = "*"

var fieldBounds = [fieldCount]struct {
	name    string
	minimum int
	maximum int
}{
	Minute:     {name: "minute", minimum: 0, maximum: 59},
	Hour:       {name: "hour", minimum: 0, maximum: 23},
	DayOfMonth: {name: "day-of-month", minimum: 1, maximum: 31},
	Month:      {name: "month", minimum: 1, maximum: 12},
	DayOfWeek:  {name: "day-of-week", minimum: 0, maximum: 6},
}

// Fields returns the five fields in expression order.
func Fields() []Field {
	return []Field{Minute, Hour, DayOfMonth, Month, DayOfWeek}
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldBounds[f].name
}

// Column returns the 1-indexed position of the field in an expression.
func (f Field) Column() int { return int(f) + 1 }

// Bounds returns the inclusive value range of the field.
func (f Field) Bounds() (minimum, maximum int) {
	return fieldBounds[f].minimum, fieldBounds[f].maximum
}

// Selection is the value of a single field. A nil or empty selection is
// the wildcard. A selection with more than one value only occurs in the
// multi-frequency grammar.
type Selection []int

// Single returns a selection holding exactly one value.
func Single(value int) Selection { return Selection{value} }

// IsWildcard reports whether the selection is the wildcard.
func (s Selection) IsWildcard() bool { return len(s) == 0 }

// String renders the selection as a cron token.
func (s Selection) String() string {
	if s.IsWildcard() {
		return Wildcard
	}
	parts := make([]string, len(s))
	for index, value := range s {
		parts[index] = strconv.Itoa(value)
	}
	return strings.Join(parts, ",")
}

func (s Selection) clone() Selection {
	if s.IsWildcard() {
		return nil
	}
	result := make(Selection, len(s))
	copy(result, s)
	return result
}

// Shape records which fields of an expression are concrete (true) and
// which are the wildcard (false).
type Shape [fieldCount]bool

// String renders the shape in the "? ? * * ?" notation.
func (s Shape) String() string {
	parts := make([]string, fieldCount)
	for index, concrete := range s {
		if concrete {
			parts[index] = "?"
		} else {
			parts[index] = Wildcard
		}
	}
	return strings.Join(parts, " ")
}

// Expression is a parsed cron expression: five selections in the order
// minute, hour, day-of-month, month, day-of-week.
type Expression struct {
	fields [fieldCount]Selection
}

// NewExpression builds an expression from per-field selections. No
// validation is performed; use [Grammar.Parse] for untrusted input.
func NewExpression(minute, hour, dayOfMonth, month, dayOfWeek Selection) Expression {
	return Expression{fields: [fieldCount]Selection{
		minute.clone(), hour.clone(), dayOfMonth.clone(), month.clone(), dayOfWeek.clone(),
	}}
}

// Field returns the selection of one field.
func (e Expression) Field(field Field) Selection {
	return e.fields[field].clone()
}

// Shape returns which fields are concrete.
func (e Expression) Shape() Shape {
	var shape Shape
	for index, selection := range e.fields {
		shape[index] = !selection.IsWildcard()
	}
	return shape
}

// String renders the canonical text: five tokens joined by single spaces.
func (e Expression) String() string {
	parts := make([]string, fieldCount)
	for index, selection := range e.fields {
		parts[index] = selection.String()
	}
	return strings.Join(parts, " ")
}

// Grammar selects which token forms are accepted. The zero value and
// [Strict] accept only the wildcard and single values. A MaxListLength
// above one enables the multi-frequency grammar: the category's
// frequency field may hold a comma list of up to MaxListLength values.
type Grammar struct {
	MaxListLength int
}

// Strict is the canonical grammar: no lists.
var Strict = Grammar{MaxListLength: 1}

func (g Grammar) maxListLength() int {
	if g.MaxListLength < 1 {
		return 1
	}
	return g.MaxListLength
}

// Parse parses an expression using the strict grammar.
func Parse(text string) (Expression, error) {
	return Strict.Parse(text)
}

// Parse validates the syntax and field ranges of text and returns the
// parsed expression. Syntax is checked for every field before any range
// check, so a malformed token is always reported as a [*SyntaxError]
// even when another field is out of range.
//
// Parse does not check the shape; see [Expression.Category].
func (g Grammar) Parse(text string) (Expression, error) {
	if count := len(strings.Fields(text)); count != fieldCount {
		return Expression{}, &SyntaxError{
			Expression: text,
			Reason:     "expected 5 fields, got " + strconv.Itoa(count),
		}
	}
	tokens := strings.Split(text, " ")
	if len(tokens) != fieldCount {
		return Expression{}, &SyntaxError{
			Expression: text,
			Reason:     "fields must be separated by single spaces",
		}
	}

	var expression Expression
	for index, token := range tokens {
		selection, err := g.parseToken(text, Field(index), token)
		if err != nil {
			return Expression{}, err
		}
		expression.fields[index] = selection
	}

	for index, selection := range expression.fields {
		if err := g.checkRange(text, Field(index), selection); err != nil {
			return Expression{}, err
		}
	}
	return expression, nil
}

// parseToken checks the shape of one token. Values are returned
// unvalidated against the field bounds.
func (g Grammar) parseToken(text string, field Field, token string) (Selection, error) {
	syntaxError := func(reason string) error {
		return &SyntaxError{Expression: text, Column: field.Column(), Token: token, Reason: reason}
	}

	if token == Wildcard {
		return nil, nil
	}
	if token == "" {
		return nil, syntaxError("empty field")
	}

	parts := strings.Split(token, ",")
	if len(parts) > 1 && g.maxListLength() == 1 {
		return nil, syntaxError("comma lists are not supported")
	}

	selection := make(Selection, 0, len(parts))
	for _, part := range parts {
		value, reason := parseValue(part)
		if reason != "" {
			return nil, syntaxError(reason)
		}
		selection = append(selection, value)
	}
	return selection, nil
}

// parseValue parses a canonical decimal value: digits only, no sign, no
// leading zero. Values too large for an int saturate at math.MaxInt so
// the range check reports them.
func parseValue(part string) (int, string) {
	if part == "" {
		return 0, "empty list entry"
	}
	if part == Wildcard {
		return 0, "wildcard cannot appear in a list"
	}
	for _, character := range part {
		if character < '0' || character > '9' {
			return 0, "expected \"*\" or a decimal value"
		}
	}
	if len(part) > 1 && part[0] == '0' {
		return 0, "leading zeros are not allowed"
	}
	value, err := strconv.Atoi(part)
	if err != nil {
		return math.MaxInt, ""
	}
	return value, ""
}

func (g Grammar) checkRange(text string, field Field, selection Selection) error {
	minimum, maximum := field.Bounds()
	if limit := g.maxListLength(); len(selection) > limit {
		return &RangeError{
			Expression: text,
			Column:     field.Column(),
			Field:      field,
			Minimum:    1,
			Maximum:    limit,
			ListLength: len(selection),
		}
	}
	for _, value := range selection {
		if value < minimum || value > maximum {
			return &RangeError{
				Expression: text,
				Column:     field.Column(),
				Field:      field,
				Value:      value,
				Minimum:    minimum,
				Maximum:    maximum,
			}
		}
	}
	return nil
}

// Classify validates text with the strict grammar and returns its
// category.
func Classify(text string) (Category, error) {
	category, _, err := Strict.Classify(text)
	return category, err
}

// Classify validates text and returns both its category and the parsed
// expression. Errors are a [*SyntaxError], [*RangeError], or
// [*UnsupportedFormatError].
func (g Grammar) Classify(text string) (Category, Expression, error) {
	expression, err := g.Parse(text)
	if err != nil {
		return "", Expression{}, err
	}
	category, err := expression.Category()
	if err != nil {
		return "", Expression{}, err
	}
	return category, expression, nil
}
