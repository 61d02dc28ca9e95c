// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Notice is a blocking message box rendered as a centered overlay. The
// owning model shows it until the user dismisses it; while a notice is
// up, no other input reaches the widgets underneath.
type Notice struct {
	Title   string
	Message string
}

// Notice chrome: 2 columns border + 2 columns padding horizontally;
// 2 lines border + title + blank + footer vertically.
const (
	noticeChromeWidth   = 4
	noticeMaxInnerWidth = 48
	noticeMinInnerWidth = 20
	noticeFooter        = "Enter/Esc dismiss"
)

// Render produces the notice overlay lines for splicing onto the view.
// Returns the rendered lines and the anchor position (top-left corner
// in screen coordinates) that centers the box on the screen.
func (notice Notice) Render(theme Theme, screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := screenWidth - noticeChromeWidth
	if innerWidth > noticeMaxInnerWidth {
		innerWidth = noticeMaxInnerWidth
	}
	if innerWidth < noticeMinInnerWidth {
		innerWidth = noticeMinInnerWidth
	}

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.DialogBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ErrorForeground).
		Background(theme.DialogBackground)
	textStyle := lipgloss.NewStyle().
		Foreground(theme.DialogForeground).
		Background(theme.DialogBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Background(theme.DialogBackground)

	var lines []string
	lines = append(lines, PadLine(titleStyle.Render(notice.Title), innerWidth, backgroundStyle))
	lines = append(lines, PadLine("", innerWidth, backgroundStyle))
	wrapped := ansi.Wordwrap(notice.Message, innerWidth, " ")
	for _, line := range strings.Split(wrapped, "\n") {
		lines = append(lines, PadLine(textStyle.Render(line), innerWidth, backgroundStyle))
	}
	lines = append(lines, PadLine("", innerWidth, backgroundStyle))
	lines = append(lines, PadLine(footerStyle.Render(noticeFooter), innerWidth, backgroundStyle))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		BorderBackground(theme.DialogBackground).
		Background(theme.DialogBackground).
		Padding(0, 1)

	rendered := borderStyle.Render(strings.Join(lines, "\n"))
	resultLines := strings.Split(rendered, "\n")
	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}

	anchorX := (screenWidth - renderedWidth) / 2
	anchorY := (screenHeight - len(resultLines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return resultLines, anchorX, anchorY
}
