// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cronui

import (
	"slices"

	"github.com/charmbracelet/x/ansi"

	"github.com/cronedit/cronedit/lib/cron"
	"github.com/cronedit/cronedit/lib/gentleselect"
)

// Screen rows of the editor view.
const (
	headerRow = 0
	editorRow = 2
	statusRow = 4
	helpRow   = 5

	// editorMargin is the number of blank columns before the editor line.
	editorMargin = 1
)

type segmentKind int

const (
	segmentText segmentKind = iota
	segmentSelect
	segmentSave
	segmentBusy
)

// segment is one run of the editor line: connecting text, a select
// label, or the save control.
type segment struct {
	kind      segmentKind
	text      string
	control   string
	selectBox *gentleselect.Select
	x         int // Screen column of the first cell.
	width     int
}

// line lays out the editor line. Rendering, focus order, and mouse hit
// testing all read it, so they always agree on where a label is.
func (w *Widget) line() []segment {
	var segments []segment
	x := editorMargin
	add := func(part segment) {
		part.x = x
		part.width = ansi.StringWidth(part.text)
		x += part.width
		segments = append(segments, part)
	}
	text := func(content string) {
		add(segment{kind: segmentText, text: content})
	}
	control := func(selectBox *gentleselect.Select) {
		add(segment{kind: segmentSelect, text: selectBox.Label(), control: selectBox.Name, selectBox: selectBox})
	}

	category := cron.Category(w.period.Value())
	var frequencyPrimary *gentleselect.Select
	if field, ok := category.FrequencyField(); ok {
		frequencyPrimary = w.primarySelect(category, field)
	}
	// group adds a select and, for the frequency field, its clones:
	// "A, B and C".
	group := func(selectBox *gentleselect.Select) {
		control(selectBox)
		if selectBox != frequencyPrimary {
			return
		}
		for index, clone := range w.clones {
			if index == len(w.clones)-1 {
				text(" and ")
			} else {
				text(", ")
			}
			control(clone)
		}
	}

	if w.frequency != nil {
		control(w.frequency)
		text(" per ")
	}
	control(w.period)
	for _, displayed := range category.DisplayPlan() {
		switch displayed {
		case cron.GroupDayOfMonth:
			text(" on the ")
			group(w.dayOfMonth)
		case cron.GroupMonth:
			text(" of ")
			group(w.month)
		case cron.GroupMinutes:
			text(" at ")
			group(w.minute)
			text(" minutes past the hour")
		case cron.GroupDayOfWeek:
			text(" on ")
			group(w.dayOfWeek)
		case cron.GroupTime:
			text(" at ")
			group(w.timeMinute)
			text(" minutes past ")
			group(w.timeHour)
		}
	}

	switch {
	case w.submitter == nil:
	case w.busy:
		text("  ")
		add(segment{kind: segmentBusy, text: "saving…"})
	case w.changed:
		text("  ")
		add(segment{kind: segmentSave, text: "« save", control: nameSave})
	}
	return segments
}

// controls returns the focusable control names in line order.
func (w *Widget) controls() []string {
	var names []string
	for _, part := range w.line() {
		if part.control != "" {
			names = append(names, part.control)
		}
	}
	return names
}

// placement returns the segment of a named control.
func (w *Widget) placement(name string) (segment, bool) {
	for _, part := range w.line() {
		if part.control == name {
			return part, true
		}
	}
	return segment{}, false
}

// controlAt returns the name of the control drawn at a screen cell, or
// "" if there is none.
func (w *Widget) controlAt(x, y int) string {
	if y != editorRow {
		return ""
	}
	for _, part := range w.line() {
		if part.control != "" && x >= part.x && x < part.x+part.width {
			return part.control
		}
	}
	return ""
}

func (w *Widget) moveFocus(delta int) {
	names := w.controls()
	if len(names) == 0 {
		return
	}
	index := max(slices.Index(names, w.focus), 0)
	w.focus = names[(index+delta+len(names))%len(names)]
}

// ensureFocus moves focus back to the period select when the focused
// control is no longer on the line.
func (w *Widget) ensureFocus() {
	if !slices.Contains(w.controls(), w.focus) {
		w.focus = namePeriod
	}
}
