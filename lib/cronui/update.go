// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cronui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cronedit/cronedit/lib/gentleselect"
	"github.com/cronedit/cronedit/lib/tui"
)

// submitResultMsg carries the outcome of a save back to Update.
type submitResultMsg struct {
	value string
	err   error
}

// Init implements tea.Model.
func (w *Widget) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (w *Widget) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var command tea.Cmd
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		w.width = message.Width
		w.height = message.Height

	case tea.KeyMsg:
		command = w.handleKey(message)

	case tea.MouseMsg:
		command = w.handleMouse(message)

	case submitResultMsg:
		w.handleSubmitResult(message)

	case gentleselect.AnimationMsg:
		w.tickRunning = false
		for _, selectBox := range w.selects() {
			selectBox.Advance(message.Time)
		}
	}

	w.ensureFocus()
	if tick := w.scheduleTick(); tick != nil {
		command = tea.Batch(command, tick)
	}
	return w, command
}

func (w *Widget) handleKey(message tea.KeyMsg) tea.Cmd {
	if message.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	now := w.clock.Now()

	// A notice blocks everything else until dismissed.
	if w.notice != nil {
		if key.Matches(message, w.keys.Dismiss) {
			w.notice = nil
		}
		return nil
	}

	if open := w.openSelect(); open != nil {
		if key.Matches(message, w.dialogKeys.Close) {
			w.hideDialogs()
			return nil
		}
		w.handleSelectEvent(open, open.HandleKey(message, w.dialogKeys, now), now)
		return nil
	}

	switch {
	case key.Matches(message, w.keys.Quit):
		return tea.Quit
	case key.Matches(message, w.keys.Next):
		w.moveFocus(1)
	case key.Matches(message, w.keys.Previous):
		w.moveFocus(-1)
	case key.Matches(message, w.keys.Save):
		return w.Save()
	case key.Matches(message, w.keys.Open):
		if w.focus == nameSave {
			return w.Save()
		}
		w.openDialog(w.focus, now)
	}
	return nil
}

func (w *Widget) handleMouse(message tea.MouseMsg) tea.Cmd {
	if w.notice != nil {
		return nil
	}
	now := w.clock.Now()
	leftPress := message.Action == tea.MouseActionPress && message.Button == tea.MouseButtonLeft

	if open := w.openSelect(); open != nil {
		event, consumed := open.HandleMouse(message, now)
		w.handleSelectEvent(open, event, now)
		if consumed {
			return nil
		}
		if leftPress {
			open.Close(now)
		}
	}

	name := w.controlAt(message.X, message.Y)
	switch {
	case message.Action == tea.MouseActionMotion:
		w.hover = name
	case leftPress && name == nameSave:
		w.focus = name
		return w.Save()
	case leftPress && name != "":
		w.openDialog(name, now)
	}
	return nil
}

// handleSelectEvent reacts to a chosen item. Choosing counts as a
// change even when the value is the one already selected.
func (w *Widget) handleSelectEvent(selectBox *gentleselect.Select, event gentleselect.Event, now time.Time) {
	if event != gentleselect.EventChanged {
		return
	}
	switch selectBox.Name {
	case namePeriod:
		w.periodChanged()
	case nameFrequency:
		w.frequencyChanged()
	}
	w.heat.Ignite(selectBox.Name, now)
	w.notifyChange()
}

// openDialog opens the named select's dialog just below its label and
// closes any other.
func (w *Widget) openDialog(name string, now time.Time) {
	placed, ok := w.placement(name)
	if !ok || placed.selectBox == nil {
		return
	}
	w.hideDialogs()
	placed.selectBox.Open(placed.x+1, editorRow+1, now)
	w.focus = name
}

// Save posts the current value. It does nothing while saving is
// disabled, while nothing has changed, or while a save is in flight.
func (w *Widget) Save() tea.Cmd {
	if w.submitter == nil || !w.changed || w.busy {
		return nil
	}
	w.busy = true
	value := w.Value()
	submitter := w.submitter
	w.logger.Info("saving cron value", "value", value)
	return func() tea.Msg {
		return submitResultMsg{value: value, err: submitter.Submit(context.Background(), value)}
	}
}

func (w *Widget) handleSubmitResult(message submitResultMsg) {
	w.busy = false
	if message.err != nil {
		w.logger.Warn("saving cron value failed", "value", message.value, "error", message.err)
		w.notice = &tui.Notice{Title: "Save failed", Message: SubmitFailureMessage}
		return
	}
	w.logger.Info("cron value saved", "value", message.value)
	w.base = message.value
	// The user may have kept editing while the save was in flight.
	if w.Value() == message.value {
		w.changed = false
	}
}

// scheduleTick starts the animation tick if a dialog transition or a
// label glow is running and no tick is pending.
func (w *Widget) scheduleTick() tea.Cmd {
	if w.tickRunning {
		return nil
	}
	now := w.clock.Now()
	animating := w.heat.HasHot(now)
	for _, selectBox := range w.selects() {
		if selectBox.Animating(now) {
			animating = true
		}
	}
	if !animating {
		return nil
	}
	w.tickRunning = true
	return gentleselect.Tick()
}
