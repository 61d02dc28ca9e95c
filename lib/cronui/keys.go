// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cronui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor's key bindings while no dialog is open.
// An open dialog takes its keys from [gentleselect.KeyMap] instead.
type KeyMap struct {
	// Focus moves between the controls on the editor line.
	Next     key.Binding
	Previous key.Binding

	Open key.Binding // Open the focused select, or save on the save control.
	Save key.Binding

	// Dismiss clears a failure notice.
	Dismiss key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in editor key binding set.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab", "next"),
	),
	Previous: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab", "previous"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("enter", "esc", " "),
		key.WithHelp("enter/esc", "dismiss"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
