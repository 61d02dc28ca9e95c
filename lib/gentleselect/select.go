// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package gentleselect

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/cronedit/cronedit/lib/tui"
)

// Item is one selectable option.
type Item struct {
	Label string // Display text shown on the label and in the dialog.
	Value string // Value reported when the item is chosen.
}

// Event reports what an input did to a dialog.
type Event int

const (
	// EventNone means the input did not change the selection or close
	// the dialog.
	EventNone Event = iota
	// EventChanged means an item was chosen. The dialog is closing and
	// [Select.Value] returns the new value.
	EventChanged
	// EventClosed means the dialog closed without a change.
	EventClosed
)

// AnimationMsg drives open and close transitions. Owners schedule it
// with [Tick] while any select reports [Select.Animating].
type AnimationMsg struct {
	Time time.Time
}

// Tick schedules the next [AnimationMsg].
func Tick() tea.Cmd {
	return tea.Tick(tui.AnimationTickInterval, func(now time.Time) tea.Msg {
		return AnimationMsg{Time: now}
	})
}

// Select is a label plus popup grid dialog for choosing one of a fixed
// list of items.
type Select struct {
	// Name identifies the select to its owner.
	Name string

	options  Options
	items    []Item
	labels   []string
	grid     grid
	selected int // Index into items, -1 when there are none.

	// Dialog state.
	visible    bool
	closing    bool
	effect     Effect
	transition tui.Transition
	cursor     int  // Grid cell under the keyboard or mouse.
	hovered    bool // The pointer has entered the dialog since it opened.
	query      []rune

	// AnchorX and AnchorY are the screen coordinates of the dialog's
	// top-left corner, set by [Select.Open].
	AnchorX int
	AnchorY int
}

// New creates a select over items. The first item starts selected,
// like a native select with no explicit selection.
func New(name string, items []Item, options Options) (*Select, error) {
	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("select %q: %w", name, err)
	}
	labels := make([]string, len(items))
	for index, item := range items {
		labels[index] = item.Label
	}
	selected := 0
	if len(items) == 0 {
		selected = -1
	}
	return &Select{
		Name:     name,
		options:  options,
		items:    append([]Item(nil), items...),
		labels:   labels,
		grid:     computeGrid(len(items), labels, options.Layout),
		selected: selected,
	}, nil
}

// Clone returns an independent select with the same items, options,
// and selection, and a closed dialog.
func (s *Select) Clone(name string) *Select {
	return &Select{
		Name:     name,
		options:  s.options,
		items:    s.items,
		labels:   s.labels,
		grid:     s.grid,
		selected: s.selected,
	}
}

// Items returns the select's items in order.
func (s *Select) Items() []Item {
	return append([]Item(nil), s.items...)
}

// Options returns the options the select was built with.
func (s *Select) Options() Options {
	return s.options
}

// Value returns the value of the selected item, or "" if there are no
// items.
func (s *Select) Value() string {
	if s.selected < 0 {
		return ""
	}
	return s.items[s.selected].Value
}

// Label returns the display text of the selected item.
func (s *Select) Label() string {
	if s.selected < 0 {
		return ""
	}
	return s.items[s.selected].Label
}

// SetValue brings the label and the selected cell up to date with an
// externally set value. Returns false, leaving the selection alone, if
// no item has that value.
func (s *Select) SetValue(value string) bool {
	for index, item := range s.items {
		if item.Value == value {
			s.selected = index
			return true
		}
	}
	return false
}

// Open shows the dialog anchored at (x, y) with the open effect. The
// cursor starts on the selected item and any type-ahead is cleared.
func (s *Select) Open(x, y int, now time.Time) {
	s.AnchorX = x
	s.AnchorY = y
	s.visible = true
	s.closing = false
	s.hovered = false
	s.query = nil
	s.cursor = s.selected
	if s.cursor < 0 {
		s.cursor = 0
	}
	s.effect = s.options.OpenEffect
	s.transition = tui.NewTransition(true, s.options.OpenSpeed, now)
}

// Close hides the dialog with the close effect.
func (s *Select) Close(now time.Time) {
	if !s.visible || s.closing {
		return
	}
	s.closing = true
	s.effect = s.options.CloseEffect
	s.transition = tui.NewTransition(false, s.options.CloseSpeed, now)
	s.Advance(now)
}

// Hide removes the dialog immediately, without an effect.
func (s *Select) Hide() {
	s.visible = false
	s.closing = false
	s.query = nil
}

// IsOpen reports whether the dialog is showing and accepting input. A
// dialog in its close transition is still drawn but is not open.
func (s *Select) IsOpen() bool {
	return s.visible && !s.closing
}

// Visible reports whether the dialog should be drawn.
func (s *Select) Visible() bool {
	return s.visible
}

// Animating reports whether an open or close transition is running.
func (s *Select) Animating(now time.Time) bool {
	return s.visible && !s.transition.Done(now)
}

// Advance finishes a close transition whose time has run out.
func (s *Select) Advance(now time.Time) {
	if s.closing && s.transition.Done(now) {
		s.Hide()
	}
}

// Cursor returns the grid cell under the keyboard cursor.
func (s *Select) Cursor() int {
	return s.cursor
}

// Query returns the current type-ahead text.
func (s *Select) Query() string {
	return string(s.query)
}

// Choose picks a grid cell and closes the dialog with the close
// effect. A dummy cell, or any position outside the grid, closes
// without a change.
func (s *Select) Choose(cell int, now time.Time) Event {
	s.Close(now)
	if cell < 0 || cell >= len(s.items) {
		return EventClosed
	}
	s.selected = cell
	return EventChanged
}

// HandleKey routes a key press to the open dialog.
func (s *Select) HandleKey(message tea.KeyMsg, keys KeyMap, now time.Time) Event {
	if !s.IsOpen() {
		return EventNone
	}
	switch {
	case key.Matches(message, keys.Close):
		s.Hide()
		return EventClosed
	case key.Matches(message, keys.Choose):
		return s.Choose(s.cursor, now)
	case key.Matches(message, keys.Up):
		s.moveCursor(-1, 0)
	case key.Matches(message, keys.Down):
		s.moveCursor(1, 0)
	case key.Matches(message, keys.Left):
		s.moveCursor(0, -1)
	case key.Matches(message, keys.Right):
		s.moveCursor(0, 1)
	case key.Matches(message, keys.Erase):
		if len(s.query) > 0 {
			s.query = s.query[:len(s.query)-1]
			s.jumpToQuery()
		}
	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		s.query = append(s.query, message.Runes...)
		if message.Type == tea.KeySpace && len(message.Runes) == 0 {
			s.query = append(s.query, ' ')
		}
		s.jumpToQuery()
	}
	return EventNone
}

// moveCursor moves by whole rows or columns, wrapping around the
// grid's edges. Navigation clears the type-ahead.
func (s *Select) moveCursor(rowDelta, columnDelta int) {
	s.query = nil
	if s.grid.rows == 0 || s.grid.columns == 0 {
		return
	}
	row, column := s.grid.position(s.cursor)
	row = (row + rowDelta + s.grid.rows) % s.grid.rows
	column = (column + columnDelta + s.grid.columns) % s.grid.columns
	s.cursor = s.grid.cellAt(row, column)
}

// jumpToQuery moves the cursor to the item that best fuzzy-matches
// the type-ahead text.
func (s *Select) jumpToQuery() {
	if len(s.query) == 0 {
		return
	}
	if best := tui.BestFuzzyMatch(s.labels, s.query); best >= 0 {
		s.cursor = best
	}
}

// Width returns the dialog width in cells.
func (s *Select) Width() int {
	return s.grid.width
}

// Height returns the dialog height in lines, including the title.
func (s *Select) Height() int {
	return s.titleLines() + s.grid.rows
}

func (s *Select) titleLines() int {
	if s.options.Title != "" {
		return 1
	}
	return 0
}

// Contains returns true if the screen coordinate (x, y) falls within
// the dialog's bounding rectangle.
func (s *Select) Contains(x, y int) bool {
	return x >= s.AnchorX && x < s.AnchorX+s.Width() &&
		y >= s.AnchorY && y < s.AnchorY+s.Height()
}

// CellAt returns the grid cell at the screen coordinate (x, y), or -1
// for the title line and positions outside the dialog.
func (s *Select) CellAt(x, y int) int {
	if !s.Contains(x, y) {
		return -1
	}
	row := y - s.AnchorY - s.titleLines()
	column := (x - s.AnchorX) / (s.grid.itemWidth + cellPadding)
	return s.grid.cellAt(row, column)
}

// HandleMouse routes a mouse event to the open dialog. Motion inside
// the dialog moves the cursor; a left click chooses the cell under the
// pointer. Once the pointer has entered the dialog, moving out of it
// hides the dialog when HideOnMouseOut is set. The second result
// reports whether the event was consumed.
func (s *Select) HandleMouse(message tea.MouseMsg, now time.Time) (Event, bool) {
	if !s.IsOpen() {
		return EventNone, false
	}
	inside := s.Contains(message.X, message.Y)

	switch message.Action {
	case tea.MouseActionMotion:
		if inside {
			s.hovered = true
			if cell := s.CellAt(message.X, message.Y); cell >= 0 {
				s.cursor = cell
			}
			return EventNone, true
		}
		if s.hovered && s.options.HideOnMouseOut {
			s.Hide()
			return EventClosed, false
		}
	case tea.MouseActionPress:
		if inside && message.Button == tea.MouseButtonLeft {
			return s.Choose(s.CellAt(message.X, message.Y), now), true
		}
	}
	return EventNone, false
}
