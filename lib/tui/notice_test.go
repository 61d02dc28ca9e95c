// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestNoticeRenderCentered(t *testing.T) {
	notice := Notice{Title: "Save failed", Message: "An error occurred when submitting your request."}
	lines, anchorX, anchorY := notice.Render(DefaultTheme, 80, 24)
	if len(lines) == 0 {
		t.Fatal("no lines rendered")
	}

	width := ansi.StringWidth(lines[0])
	for index, line := range lines {
		if got := ansi.StringWidth(line); got != width {
			t.Errorf("line %d width = %d, want %d", index, got, width)
		}
	}
	if anchorX != (80-width)/2 {
		t.Errorf("anchorX = %d, want %d", anchorX, (80-width)/2)
	}
	if anchorY != (24-len(lines))/2 {
		t.Errorf("anchorY = %d, want %d", anchorY, (24-len(lines))/2)
	}

	text := ansi.Strip(strings.Join(lines, "\n"))
	for _, want := range []string{"Save failed", notice.Message, noticeFooter} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered notice missing %q:\n%s", want, text)
		}
	}
}

func TestNoticeRenderWrapsLongMessages(t *testing.T) {
	notice := Notice{Title: "Error", Message: strings.Repeat("word ", 40)}
	lines, _, _ := notice.Render(DefaultTheme, 30, 10)
	for index, line := range lines {
		if width := ansi.StringWidth(line); width > 30 {
			t.Errorf("line %d width = %d, exceeds the box", index, width)
		}
	}
	if anchorLines := len(lines); anchorLines < 8 {
		t.Errorf("long message rendered in %d lines, expected wrapping", anchorLines)
	}
}
