// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cronui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cronedit/cronedit/lib/gentleselect"
	"github.com/cronedit/cronedit/lib/tui"
)

// View implements tea.Model.
func (w *Widget) View() string {
	now := w.clock.Now()
	lines := make([]string, helpRow+1)

	lines[headerRow] = lipgloss.NewStyle().
		Foreground(w.theme.HeaderForeground).
		Bold(true).
		Render(" Schedule")
	lines[editorRow] = w.renderLine()
	lines[statusRow] = w.renderStatus()
	lines[helpRow] = w.renderHelp()

	view := strings.Join(lines, "\n")
	for _, selectBox := range w.selects() {
		if selectBox.Visible() {
			view = tui.SpliceOverlay(view, selectBox.RenderDialog(w.theme, now), selectBox.AnchorX, selectBox.AnchorY)
		}
	}
	if w.notice != nil {
		noticeLines, x, y := w.notice.Render(w.theme, w.width, w.height)
		view = tui.SpliceOverlay(view, noticeLines, x, y)
	}
	return view
}

func (w *Widget) renderLine() string {
	now := w.clock.Now()
	textStyle := lipgloss.NewStyle().Foreground(w.theme.NormalText)

	var builder strings.Builder
	builder.WriteString(strings.Repeat(" ", editorMargin))
	for _, part := range w.line() {
		highlighted := part.control != "" && (part.control == w.focus || part.control == w.hover)
		switch part.kind {
		case segmentSelect:
			builder.WriteString(part.selectBox.RenderLabel(w.theme, gentleselect.LabelState{
				Highlighted: highlighted,
				Hot:         w.heat.Heat(part.control, now) > 0,
			}))
		case segmentSave:
			style := lipgloss.NewStyle().Foreground(w.theme.SaveForeground).Bold(true)
			if highlighted {
				style = style.Background(w.theme.LabelHighlight)
			}
			builder.WriteString(style.Render(part.text))
		case segmentBusy:
			builder.WriteString(lipgloss.NewStyle().Foreground(w.theme.BusyForeground).Render(part.text))
		default:
			builder.WriteString(textStyle.Render(part.text))
		}
	}
	return builder.String()
}

func (w *Widget) renderStatus() string {
	status := lipgloss.NewStyle().Foreground(w.theme.FaintText).Render(" cron " + w.Value())
	if w.changed {
		status += lipgloss.NewStyle().Foreground(w.theme.SaveForeground).Render("  unsaved")
	}
	return status
}

func (w *Widget) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(w.theme.HelpText)
	switch {
	case w.notice != nil:
		return style.Render(" enter/esc dismiss")
	case w.openSelect() != nil:
		return style.Render(" ↑↓←→ move  enter choose  esc close  type to jump")
	}
	help := " tab/←→ move  enter open  q quit"
	if w.submitter != nil {
		help = " tab/←→ move  enter open  ctrl+s save  q quit"
	}
	return style.Render(help)
}
