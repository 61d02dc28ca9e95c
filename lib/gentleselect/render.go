// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package gentleselect

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/cronedit/cronedit/lib/tui"
)

// LabelState selects the styling of a rendered label.
type LabelState struct {
	Highlighted bool // Focused or under the pointer.
	Hot         bool // Recently changed.
}

// RenderLabel renders the inline label that stands in for the select.
func (s *Select) RenderLabel(theme tui.Theme, state LabelState) string {
	style := lipgloss.NewStyle().
		Foreground(theme.LabelForeground).
		Underline(true)
	switch {
	case state.Highlighted:
		style = style.Background(theme.LabelHighlight)
	case state.Hot:
		style = style.Background(theme.ChangedAccent)
	}
	return style.Render(s.Label())
}

// LabelWidth returns the visible width of the rendered label.
func (s *Select) LabelWidth() int {
	return ansi.StringWidth(s.Label())
}

// RenderDialog produces the dialog lines for overlay splicing at
// (AnchorX, AnchorY). Every line has the same visible width. Returns
// nil when the dialog is hidden.
//
// While a slide transition runs, only the leading lines are returned,
// so the dialog grows downward while opening and shrinks upward while
// closing. While a fade transition runs, the dialog is drawn faint.
func (s *Select) RenderDialog(theme tui.Theme, now time.Time) []string {
	if !s.visible {
		return nil
	}

	faint := s.effect == EffectFade && !s.transition.Done(now)

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.DialogBackground)
	itemStyle := lipgloss.NewStyle().
		Foreground(theme.DialogForeground).
		Background(theme.DialogBackground).
		Faint(faint)
	cursorStyle := itemStyle.
		Background(theme.CursorBackground)
	selectedStyle := lipgloss.NewStyle().
		Foreground(theme.SelectedForeground).
		Background(theme.SelectedBackground).
		Faint(faint)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.DialogTitle).
		Background(theme.DialogBackground).
		Faint(faint)

	var lines []string
	if s.options.Title != "" {
		title := " " + ansi.Truncate(s.options.Title, s.grid.width-cellPadding, "…")
		lines = append(lines, tui.PadLine(titleStyle.Render(title), s.grid.width, backgroundStyle))
	}

	for row := 0; row < s.grid.rows; row++ {
		var line strings.Builder
		for column := 0; column < s.grid.columns; column++ {
			cell := s.grid.cellAt(row, column)
			text := ""
			if cell < len(s.items) {
				text = s.items[cell].Label
			}
			text = ansi.Truncate(text, s.grid.itemWidth, "")
			content := " " + text + strings.Repeat(" ", s.grid.itemWidth-ansi.StringWidth(text)) + " "

			style := itemStyle
			switch {
			case cell == s.selected && cell == s.cursor:
				style = selectedStyle.Bold(true)
			case cell == s.selected:
				style = selectedStyle
			case cell == s.cursor:
				style = cursorStyle
			}
			line.WriteString(style.Render(content))
		}
		lines = append(lines, tui.PadLine(line.String(), s.grid.width, backgroundStyle))
	}

	if s.effect == EffectSlide && !s.transition.Done(now) {
		shown := int(math.Ceil(s.transition.Visibility(now) * float64(len(lines))))
		if shown < 1 {
			shown = 1
		}
		if shown < len(lines) {
			lines = lines[:shown]
		}
	}
	return lines
}
