// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the editor's terminal widgets.
// All colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Select labels (the inline replacement for a native dropdown).
	LabelForeground lipgloss.Color
	LabelHighlight  lipgloss.Color // Background while focused or hovered.

	// Popup dialog.
	DialogForeground   lipgloss.Color
	DialogBackground   lipgloss.Color
	DialogTitle        lipgloss.Color
	SelectedBackground lipgloss.Color // The currently chosen cell.
	SelectedForeground lipgloss.Color
	CursorBackground   lipgloss.Color // The cell under the keyboard cursor.

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Save control and change tracking. ChangedAccent tints a label
	// right after its value changes and fades out.
	SaveForeground lipgloss.Color
	BusyForeground lipgloss.Color
	ChangedAccent  lipgloss.Color

	// Failure notices.
	ErrorForeground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	LabelForeground: lipgloss.Color("75"),  // blue, reads as clickable
	LabelHighlight:  lipgloss.Color("237"), // slightly lighter than background

	DialogForeground:   lipgloss.Color("252"),
	DialogBackground:   lipgloss.Color("236"),
	DialogTitle:        lipgloss.Color("255"),
	SelectedBackground: lipgloss.Color("24"), // dark blue
	SelectedForeground: lipgloss.Color("255"),
	CursorBackground:   lipgloss.Color("239"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	SaveForeground: lipgloss.Color("114"), // green
	BusyForeground: lipgloss.Color("220"), // amber
	ChangedAccent:  lipgloss.Color("58"),  // dark amber background tint

	ErrorForeground: lipgloss.Color("196"),
}
