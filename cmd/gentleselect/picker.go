// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cronedit/cronedit/lib/clock"
	"github.com/cronedit/cronedit/lib/gentleselect"
	"github.com/cronedit/cronedit/lib/tui"
)

// labelColumn is where the select's label starts on the prompt line.
const labelColumn = len("Choose: ")

// picker is a one-select program: the dialog opens under the label at
// start, and the program exits once an item is chosen or the dialog
// closes.
type picker struct {
	selectBox   *gentleselect.Select
	theme       tui.Theme
	keys        gentleselect.KeyMap
	clock       clock.Clock
	chosen      bool
	tickRunning bool
}

func newPicker(selectBox *gentleselect.Select) *picker {
	return &picker{
		selectBox: selectBox,
		theme:     tui.DefaultTheme,
		keys:      gentleselect.DefaultKeyMap,
		clock:     clock.Real(),
	}
}

func (p *picker) Init() tea.Cmd {
	p.selectBox.Open(labelColumn+1, 1, p.clock.Now())
	return p.scheduleTick()
}

func (p *picker) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	now := p.clock.Now()
	switch message := message.(type) {
	case tea.KeyMsg:
		if message.Type == tea.KeyCtrlC {
			return p, tea.Quit
		}
		return p, p.handleEvent(p.selectBox.HandleKey(message, p.keys, now))

	case tea.MouseMsg:
		event, _ := p.selectBox.HandleMouse(message, now)
		return p, p.handleEvent(event)

	case gentleselect.AnimationMsg:
		p.tickRunning = false
		p.selectBox.Advance(message.Time)
	}
	return p, p.scheduleTick()
}

func (p *picker) handleEvent(event gentleselect.Event) tea.Cmd {
	switch event {
	case gentleselect.EventChanged:
		p.chosen = true
		return tea.Quit
	case gentleselect.EventClosed:
		return tea.Quit
	}
	return p.scheduleTick()
}

func (p *picker) scheduleTick() tea.Cmd {
	if p.tickRunning || !p.selectBox.Animating(p.clock.Now()) {
		return nil
	}
	p.tickRunning = true
	return gentleselect.Tick()
}

func (p *picker) View() string {
	prompt := lipgloss.NewStyle().Foreground(p.theme.NormalText).Render("Choose: ")
	view := prompt + p.selectBox.RenderLabel(p.theme, gentleselect.LabelState{Highlighted: p.selectBox.IsOpen()})
	if p.selectBox.Visible() {
		view = tui.SpliceOverlay(view, p.selectBox.RenderDialog(p.theme, p.clock.Now()), p.selectBox.AnchorX, p.selectBox.AnchorY)
	}
	return view
}
