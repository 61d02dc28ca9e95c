// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/cronedit/cronedit/cmd/cronedit/cli"
	"github.com/cronedit/cronedit/lib/clock"
	"github.com/cronedit/cronedit/lib/testutil"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func mustParse(t *testing.T, args ...string) *picker {
	t.Helper()
	var stderr bytes.Buffer
	selectBox, _, err := parseArgs(args, &stderr)
	if err != nil {
		t.Fatalf("parseArgs(%q): %v", args, err)
	}
	if selectBox == nil {
		t.Fatalf("parseArgs(%q) printed help", args)
	}
	model := newPicker(selectBox)
	model.clock = clock.Fake(testNow)
	return model
}

func TestParseArgsBuildsSelect(t *testing.T) {
	model := mustParse(t, "--columns", "2", "--item-width", "9", "--initial", "2", "1=January", "2=February", "3=March")
	if got := model.selectBox.Value(); got != "2" {
		t.Errorf("Value() = %q, want the --initial value", got)
	}
	if got := model.selectBox.Width(); got != 22 {
		t.Errorf("Width() = %d, want two columns of 9+2", got)
	}
}

func TestParseArgsReadsItemsFile(t *testing.T) {
	path := testutil.WriteFile(t, "items.tsv", "a\tAlpha\nb\tBravo\n")
	model := mustParse(t, "--items", path, "c=Charlie")
	items := model.selectBox.Items()
	if len(items) != 3 || items[0].Value != "c" || items[2].Label != "Bravo" {
		t.Errorf("items = %+v", items)
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no_items", nil},
		{"columns_without_width", []string{"--columns", "2", "a", "b"}},
		{"rows_and_columns", []string{"--columns", "2", "--rows", "2", "--item-width", "3", "a"}},
		{"bad_effect", []string{"--effect", "spin", "a"}},
		{"bad_speed", []string{"--speed", "sluggish", "a"}},
		{"unknown_initial", []string{"--initial", "z", "a", "b"}},
		{"missing_file", []string{"--items", "/nonexistent/items.tsv"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stderr bytes.Buffer
			_, _, err := parseArgs(test.args, &stderr)
			var toolError *cli.ToolError
			if !errors.As(err, &toolError) || toolError.Category != cli.CategoryValidation {
				t.Errorf("error = %v, want a validation error", err)
			}
		})
	}
}

func TestPickerChoosesWithKeyboard(t *testing.T) {
	model := mustParse(t, "--speed", "0", "a=Alpha", "b=Bravo", "c=Charlie")
	model.Init()
	if !model.selectBox.IsOpen() {
		t.Fatal("dialog is not open after Init")
	}

	model.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, command := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !model.chosen {
		t.Fatal("enter did not choose")
	}
	if model.selectBox.Value() != "b" {
		t.Errorf("Value() = %q, want b", model.selectBox.Value())
	}
	if command == nil {
		t.Fatal("choosing returned no command")
	}
	if _, ok := command().(tea.QuitMsg); !ok {
		t.Error("choosing did not quit")
	}
}

func TestPickerEscapeQuitsWithoutChoice(t *testing.T) {
	model := mustParse(t, "--speed", "0", "a", "b")
	model.Init()
	_, command := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if model.chosen {
		t.Error("escape counted as a choice")
	}
	if command == nil {
		t.Fatal("escape returned no command")
	}
	if _, ok := command().(tea.QuitMsg); !ok {
		t.Error("escape did not quit")
	}
}

func TestPickerView(t *testing.T) {
	model := mustParse(t, "--speed", "0", "--title", "Colors", "r=red", "g=green")
	model.Init()
	view := ansi.Strip(model.View())
	for _, want := range []string{"Choose: red", "Colors", "green"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
