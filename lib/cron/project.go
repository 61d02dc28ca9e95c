// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cron

// Values holds the editor's per-field selections. A nil field is the
// wildcard.
type Values struct {
	Minute     Selection `json:"minute,omitempty"`
	Hour       Selection `json:"hour,omitempty"`
	DayOfMonth Selection `json:"day_of_month,omitempty"`
	Month      Selection `json:"month,omitempty"`
	DayOfWeek  Selection `json:"day_of_week,omitempty"`
}

// Get returns the selection of one field.
func (v Values) Get(field Field) Selection {
	switch field {
	case Minute:
		return v.Minute
	case Hour:
		return v.Hour
	case DayOfMonth:
		return v.DayOfMonth
	case Month:
		return v.Month
	case DayOfWeek:
		return v.DayOfWeek
	default:
		return nil
	}
}

// Set replaces the selection of one field.
func (v *Values) Set(field Field, selection Selection) {
	switch field {
	case Minute:
		v.Minute = selection
	case Hour:
		v.Hour = selection
	case DayOfMonth:
		v.DayOfMonth = selection
	case Month:
		v.Month = selection
	case DayOfWeek:
		v.DayOfWeek = selection
	}
}

// categoryFields returns the fields shown by the category's display
// plan, deduplicated, in expression order.
func categoryFields(category Category) []Field {
	var shown [fieldCount]bool
	for _, group := range displayPlans[category] {
		for _, field := range group.Fields() {
			shown[field] = true
		}
	}
	var result []Field
	for index, visible := range shown {
		if visible {
			result = append(result, Field(index))
		}
	}
	return result
}

// ToFields splits an expression into named values, keeping only the
// fields that the category's display plan shows. Every other field is
// the wildcard. The expression is assumed to have been validated by
// [Grammar.Classify].
func ToFields(category Category, expression Expression) Values {
	var values Values
	for _, field := range categoryFields(category) {
		values.Set(field, expression.Field(field))
	}
	return values
}

// FromUIState joins the values of the category's visible fields into a
// cron string, with every other field set to the wildcard. Values are
// not range-checked here: whatever the controls hold passes through.
func FromUIState(category Category, values Values) string {
	var expression Expression
	for _, field := range categoryFields(category) {
		expression.fields[field] = values.Get(field).clone()
	}
	return expression.String()
}
