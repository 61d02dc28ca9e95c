// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import "fmt"

// Category is the recurrence period of an expression. It is derived
// from the expression's [Shape] alone, never from the field values.
type Category string

const (
	CategoryMinute Category = "minute"
	CategoryHour   Category = "hour"
	CategoryDay    Category = "day"
	CategoryWeek   Category = "week"
	CategoryMonth  Category = "month"
	CategoryYear   Category = "year"
)

// Group is a block of editor controls. "time" covers both the minute
// and hour selectors used by the day, week, month and year categories;
// "mins" is the lone minute selector of the hour category.
type Group string

const (
	GroupMinutes    Group = "mins"
	GroupTime       Group = "time"
	GroupDayOfWeek  Group = "dow"
	GroupDayOfMonth Group = "dom"
	GroupMonth      Group = "month"
)

// categoryShapes lists the supported shapes in matching priority order.
var categoryShapes = []struct {
	category Category
	shape    Shape
}{
	{CategoryMinute, Shape{false, false, false, false, false}},
	{CategoryHour, Shape{true, false, false, false, false}},
	{CategoryDay, Shape{true, true, false, false, false}},
	{CategoryWeek, Shape{true, true, false, false, true}},
	{CategoryMonth, Shape{true, true, true, false, false}},
	{CategoryYear, Shape{true, true, true, true, false}},
}

var displayPlans = map[Category][]Group{
	CategoryMinute: {},
	CategoryHour:   {GroupMinutes},
	CategoryDay:    {GroupTime},
	CategoryWeek:   {GroupDayOfWeek, GroupTime},
	CategoryMonth:  {GroupDayOfMonth, GroupTime},
	CategoryYear:   {GroupDayOfMonth, GroupMonth, GroupTime},
}

// frequencyFields maps each category to the field that may hold a list
// in the multi-frequency grammar ("twice per day" lists two hours).
var frequencyFields = map[Category]Field{
	CategoryHour:  Minute,
	CategoryDay:   Hour,
	CategoryWeek:  DayOfWeek,
	CategoryMonth: DayOfMonth,
	CategoryYear:  Month,
}

// Categories returns every category in priority order.
func Categories() []Category {
	result := make([]Category, len(categoryShapes))
	for index, entry := range categoryShapes {
		result[index] = entry.category
	}
	return result
}

// ParseCategory returns the category with the given name.
func ParseCategory(name string) (Category, error) {
	category := Category(name)
	if _, ok := displayPlans[category]; !ok {
		return "", fmt.Errorf("cron: unknown category %q", name)
	}
	return category, nil
}

// Valid reports whether c is one of the six categories.
func (c Category) Valid() bool {
	_, ok := displayPlans[c]
	return ok
}

// DisplayPlan returns the control groups shown for the category, in
// display order. Unknown categories show nothing.
func (c Category) DisplayPlan() []Group {
	plan := displayPlans[c]
	result := make([]Group, len(plan))
	copy(result, plan)
	return result
}

// Shows reports whether the category's display plan contains group.
func (c Category) Shows(group Group) bool {
	for _, candidate := range displayPlans[c] {
		if candidate == group {
			return true
		}
	}
	return false
}

// FrequencyField returns the field that carries the category's
// repetition count in the multi-frequency grammar. The minute category
// has none.
func (c Category) FrequencyField() (Field, bool) {
	field, ok := frequencyFields[c]
	return field, ok
}

// Fields returns the cron fields edited by the group's controls.
func (g Group) Fields() []Field {
	switch g {
	case GroupMinutes:
		return []Field{Minute}
	case GroupTime:
		return []Field{Minute, Hour}
	case GroupDayOfWeek:
		return []Field{DayOfWeek}
	case GroupDayOfMonth:
		return []Field{DayOfMonth}
	case GroupMonth:
		return []Field{Month}
	default:
		return nil
	}
}

// Category returns the category matching the expression's shape.
//
// In the multi-frequency grammar a list is only meaningful in the
// category's frequency field; a list anywhere else yields an
// [*UnsupportedFormatError].
func (e Expression) Category() (Category, error) {
	shape := e.Shape()
	for _, candidate := range categoryShapes {
		if candidate.shape != shape {
			continue
		}
		frequencyField, hasFrequency := candidate.category.FrequencyField()
		for index, selection := range e.fields {
			if len(selection) <= 1 {
				continue
			}
			if !hasFrequency || Field(index) != frequencyField {
				return "", &UnsupportedFormatError{
					Expression: e.String(),
					Shape:      shape,
					Reason: fmt.Sprintf("a %s schedule can only list values in the %s field",
						candidate.category, frequencyField),
				}
			}
		}
		return candidate.category, nil
	}
	return "", &UnsupportedFormatError{Expression: e.String(), Shape: shape}
}
