// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cronui

import (
	"fmt"
	"strconv"

	"github.com/cronedit/cronedit/lib/cron"
	"github.com/cronedit/cronedit/lib/gentleselect"
)

var monthNames = []string{
	"January", "February", "March", "April",
	"May", "June", "July", "August",
	"September", "October", "November", "December",
}

var dayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday",
}

// minuteItems labels minutes with two digits: "00" through "59".
func minuteItems() []gentleselect.Item {
	items := make([]gentleselect.Item, 0, 60)
	for minute := 0; minute < 60; minute++ {
		items = append(items, gentleselect.Item{Label: fmt.Sprintf("%02d", minute), Value: strconv.Itoa(minute)})
	}
	return items
}

// hourItems labels hours on a 12-hour clock: "12am", "1am", ... "11pm".
func hourItems() []gentleselect.Item {
	items := make([]gentleselect.Item, 0, 24)
	for hour := 0; hour < 24; hour++ {
		suffix := "am"
		if hour >= 12 {
			suffix = "pm"
		}
		display := hour % 12
		if display == 0 {
			display = 12
		}
		items = append(items, gentleselect.Item{Label: strconv.Itoa(display) + suffix, Value: strconv.Itoa(hour)})
	}
	return items
}

// ordinal renders a day of the month as "1st", "2nd", "3rd", "4th".
func ordinal(day int) string {
	suffix := "th"
	switch day {
	case 1, 21, 31:
		suffix = "st"
	case 2, 22:
		suffix = "nd"
	case 3, 23:
		suffix = "rd"
	}
	return strconv.Itoa(day) + suffix
}

func dayOfMonthItems() []gentleselect.Item {
	items := make([]gentleselect.Item, 0, 31)
	for day := 1; day <= 31; day++ {
		items = append(items, gentleselect.Item{Label: ordinal(day), Value: strconv.Itoa(day)})
	}
	return items
}

func monthItems() []gentleselect.Item {
	items := make([]gentleselect.Item, 0, len(monthNames))
	for index, name := range monthNames {
		items = append(items, gentleselect.Item{Label: name, Value: strconv.Itoa(index + 1)})
	}
	return items
}

func dayOfWeekItems() []gentleselect.Item {
	items := make([]gentleselect.Item, 0, len(dayNames))
	for index, name := range dayNames {
		items = append(items, gentleselect.Item{Label: name, Value: strconv.Itoa(index)})
	}
	return items
}

// customPrefix marks period values that stand for a custom value, so
// a custom label can never be mistaken for a category.
const customPrefix = "custom:"

// periodItems lists the custom values first, then every category.
func periodItems(custom []CustomValue) []gentleselect.Item {
	items := make([]gentleselect.Item, 0, len(custom)+6)
	for index, value := range custom {
		items = append(items, gentleselect.Item{Label: value.Label, Value: customPrefix + strconv.Itoa(index)})
	}
	for _, category := range cron.Categories() {
		items = append(items, gentleselect.Item{Label: string(category), Value: string(category)})
	}
	return items
}

func frequencyItems(frequencies []Frequency) []gentleselect.Item {
	items := make([]gentleselect.Item, 0, len(frequencies))
	for _, frequency := range frequencies {
		items = append(items, gentleselect.Item{Label: frequency.Label, Value: strconv.Itoa(frequency.Count)})
	}
	return items
}
