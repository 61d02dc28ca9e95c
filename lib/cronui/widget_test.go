// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cronui

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/cronedit/cronedit/lib/clock"
	"github.com/cronedit/cronedit/lib/cron"
	"github.com/cronedit/cronedit/lib/gentleselect"
	"github.com/cronedit/cronedit/lib/tui"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestWidget builds a widget with instant dialog effects and a
// fixed clock.
func newTestWidget(t *testing.T, configure func(*Options)) *Widget {
	t.Helper()
	options := DefaultOptions()
	options.Effects.OpenSpeed = 0
	options.Effects.CloseSpeed = 0
	options.Clock = clock.Fake(testNow)
	if configure != nil {
		configure(&options)
	}
	widget, err := New(options)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return widget
}

func mustSetValue(t *testing.T, widget *Widget, text string) {
	t.Helper()
	if err := widget.SetValue(text); err != nil {
		t.Fatalf("SetValue(%q): %v", text, err)
	}
}

// lineText returns the editor line as plain text.
func lineText(widget *Widget) string {
	var builder strings.Builder
	for _, part := range widget.line() {
		builder.WriteString(part.text)
	}
	return builder.String()
}

func keyPress(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

func typed(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func send(widget *Widget, messages ...tea.Msg) {
	for _, message := range messages {
		widget.Update(message)
	}
}

func TestNewDefaults(t *testing.T) {
	widget := newTestWidget(t, nil)
	if got := widget.Value(); got != "* * * * *" {
		t.Errorf("Value() = %q, want every minute", got)
	}
	if category, ok := widget.Category(); !ok || category != cron.CategoryMinute {
		t.Errorf("Category() = %s, %v", category, ok)
	}
	if got := widget.controls(); !reflect.DeepEqual(got, []string{namePeriod}) {
		t.Errorf("controls = %v, want only the period", got)
	}
	if widget.SavingEnabled() || widget.Changed() {
		t.Error("saving should be disabled and nothing changed")
	}
	if got := lineText(widget); got != "minute" {
		t.Errorf("line = %q", got)
	}
}

func TestNewRejectsBadInitial(t *testing.T) {
	options := DefaultOptions()
	options.Initial = "*/5 * * * *"
	_, err := New(options)
	var syntaxError *cron.SyntaxError
	if !errors.As(err, &syntaxError) {
		t.Fatalf("New error = %v, want *cron.SyntaxError", err)
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*Options)
	}{
		{"zero_frequency", func(options *Options) {
			options.FrequencyOptions = []Frequency{{Count: 0, Label: "never"}}
		}},
		{"custom_without_value", func(options *Options) {
			options.CustomValues = []CustomValue{{Label: "boot"}}
		}},
		{"grid_without_item_width", func(options *Options) {
			options.DayOfWeek = gentleselect.Layout{Columns: 2}
		}},
		{"bad_url", func(options *Options) {
			options.URLSet = "ftp://example.com/save"
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			options := DefaultOptions()
			test.configure(&options)
			if _, err := New(options); err == nil {
				t.Fatal("New() = nil error")
			}
		})
	}
}

func TestSetValueShowsCategory(t *testing.T) {
	tests := []struct {
		expression string
		category   cron.Category
		line       string
		controls   []string
	}{
		{"5 * * * *", cron.CategoryHour, "hour at 05 minutes past the hour",
			[]string{namePeriod, nameMinute}},
		{"9 10 * * *", cron.CategoryDay, "day at 09 minutes past 10am",
			[]string{namePeriod, nameTimeMinute, nameTimeHour}},
		{"9 10 * * 6", cron.CategoryWeek, "week on Saturday at 09 minutes past 10am",
			[]string{namePeriod, nameDayOfWeek, nameTimeMinute, nameTimeHour}},
		{"0 12 21 * *", cron.CategoryMonth, "month on the 21st at 00 minutes past 12pm",
			[]string{namePeriod, nameDayOfMonth, nameTimeMinute, nameTimeHour}},
		{"1 2 3 4 *", cron.CategoryYear, "year on the 3rd of April at 01 minutes past 2am",
			[]string{namePeriod, nameDayOfMonth, nameMonth, nameTimeMinute, nameTimeHour}},
	}
	for _, test := range tests {
		t.Run(test.expression, func(t *testing.T) {
			widget := newTestWidget(t, nil)
			mustSetValue(t, widget, test.expression)
			if got, _ := widget.Category(); got != test.category {
				t.Errorf("Category() = %s, want %s", got, test.category)
			}
			if got := widget.Value(); got != test.expression {
				t.Errorf("Value() = %q, want %q", got, test.expression)
			}
			if got := lineText(widget); got != test.line {
				t.Errorf("line = %q, want %q", got, test.line)
			}
			if got := widget.controls(); !reflect.DeepEqual(got, test.controls) {
				t.Errorf("controls = %v, want %v", got, test.controls)
			}
		})
	}
}

func TestSetValueErrorLeavesStateIntact(t *testing.T) {
	calls := 0
	widget := newTestWidget(t, func(options *Options) {
		options.Initial = "9 10 * * *"
		options.OnChange = []ChangeFunc{func(*Widget) { calls++ }}
	})

	for _, bad := range []string{"60 10 * * *", "* 10 * * *", "9 10 * * MON", ""} {
		if err := widget.SetValue(bad); err == nil {
			t.Errorf("SetValue(%q) = nil error", bad)
		}
	}
	if got := widget.Value(); got != "9 10 * * *" {
		t.Errorf("Value() = %q after rejected values", got)
	}
	if calls != 1 {
		t.Errorf("change handlers ran %d times, want only the initial run", calls)
	}

	err := widget.SetValue("60 10 * * *")
	var rangeError *cron.RangeError
	if !errors.As(err, &rangeError) || rangeError.Column != 1 {
		t.Errorf("error = %v, want *cron.RangeError in column 1", err)
	}
}

func TestStrictGrammarRejectsLists(t *testing.T) {
	widget := newTestWidget(t, nil)
	var syntaxError *cron.SyntaxError
	if err := widget.SetValue("0 9,17 * * *"); !errors.As(err, &syntaxError) {
		t.Errorf("SetValue(list) error = %v, want *cron.SyntaxError", err)
	}
}

func TestOnChangeRunsForEveryMutation(t *testing.T) {
	var seen []string
	record := func(widget *Widget) { seen = append(seen, widget.Value()) }
	widget := newTestWidget(t, func(options *Options) {
		options.OnChange = []ChangeFunc{record}
	})
	widget.OnChange(func(*Widget) { seen = append(seen, "second") })

	mustSetValue(t, widget, "5 * * * *")

	// Open the minute select and choose the next minute.
	send(widget, keyPress(tea.KeyTab), keyPress(tea.KeyEnter), keyPress(tea.KeyDown), keyPress(tea.KeyEnter))

	want := []string{"* * * * *", "5 * * * *", "second", "6 * * * *", "second"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("handler calls = %q, want %q", seen, want)
	}
}

func TestChoosingSameValueStillNotifies(t *testing.T) {
	calls := 0
	widget := newTestWidget(t, func(options *Options) {
		options.OnChange = []ChangeFunc{func(*Widget) { calls++ }}
	})
	send(widget, keyPress(tea.KeyEnter), keyPress(tea.KeyEnter))
	if calls != 2 {
		t.Errorf("handler calls = %d, want 2", calls)
	}
}

func TestPeriodChangeByKeyboard(t *testing.T) {
	widget := newTestWidget(t, nil)

	send(widget, keyPress(tea.KeyEnter))
	if open := widget.openSelect(); open == nil || open.Name != namePeriod {
		t.Fatalf("open select = %v, want the period dialog", open)
	}
	send(widget, keyPress(tea.KeyDown), keyPress(tea.KeyEnter))

	if widget.openSelect() != nil {
		t.Error("dialog still open after choosing")
	}
	if category, _ := widget.Category(); category != cron.CategoryHour {
		t.Fatalf("Category() = %s, want hour", category)
	}
	if got := widget.Value(); got != "0 * * * *" {
		t.Errorf("Value() = %q, want %q", got, "0 * * * *")
	}
}

func TestPeriodTypeAhead(t *testing.T) {
	widget := newTestWidget(t, nil)
	send(widget, keyPress(tea.KeyEnter), typed("w"), typed("e"), typed("e"), keyPress(tea.KeyEnter))
	if category, _ := widget.Category(); category != cron.CategoryWeek {
		t.Fatalf("Category() = %s, want week", category)
	}
	if got := widget.Value(); got != "0 0 * * 0" {
		t.Errorf("Value() = %q", got)
	}
}

func TestEscapeClosesDialogWithoutChange(t *testing.T) {
	widget := newTestWidget(t, func(options *Options) { options.Initial = "9 10 * * *" })
	send(widget, keyPress(tea.KeyEnter), keyPress(tea.KeyDown), keyPress(tea.KeyEsc))
	if widget.openSelect() != nil {
		t.Error("dialog still open after escape")
	}
	if got := widget.Value(); got != "9 10 * * *" {
		t.Errorf("Value() = %q", got)
	}
}

func TestFocusCycles(t *testing.T) {
	widget := newTestWidget(t, func(options *Options) { options.Initial = "9 10 * * 6" })
	var visited []string
	for range 4 {
		visited = append(visited, widget.focus)
		send(widget, keyPress(tea.KeyTab))
	}
	want := []string{namePeriod, nameDayOfWeek, nameTimeMinute, nameTimeHour}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("focus order = %v, want %v", visited, want)
	}
	if widget.focus != namePeriod {
		t.Errorf("tab from the last control: focus = %s, want %s", widget.focus, namePeriod)
	}

	// Shift+Tab from the first control wraps to the last.
	send(widget, keyPress(tea.KeyShiftTab))
	if widget.focus != nameTimeHour {
		t.Errorf("shift+tab focus = %s, want %s", widget.focus, nameTimeHour)
	}
	send(widget, keyPress(tea.KeyShiftTab))
	if widget.focus != nameTimeMinute {
		t.Errorf("second shift+tab focus = %s, want %s", widget.focus, nameTimeMinute)
	}
}

func TestFocusFallsBackWhenControlDisappears(t *testing.T) {
	widget := newTestWidget(t, func(options *Options) { options.Initial = "9 10 * * 6" })
	send(widget, keyPress(tea.KeyTab))
	if widget.focus != nameDayOfWeek {
		t.Fatalf("focus = %s", widget.focus)
	}
	mustSetValue(t, widget, "9 10 * * *")
	if widget.focus != namePeriod {
		t.Errorf("focus = %s, want period after day-of-week was hidden", widget.focus)
	}
}

func TestMultiFrequencyClones(t *testing.T) {
	widget := newTestWidget(t, func(options *Options) {
		options.MultiFrequency = true
		options.Initial = "0 9,17 * * *"
	})
	if got := widget.Frequency(); got != 2 {
		t.Errorf("Frequency() = %d, want 2", got)
	}
	if got := lineText(widget); got != "twice per day at 00 minutes past 9am and 5pm" {
		t.Errorf("line = %q", got)
	}
	if got := widget.Value(); got != "0 9,17 * * *" {
		t.Errorf("Value() = %q", got)
	}

	mustSetValue(t, widget, "0 9 * * 1,3,5")
	if got := lineText(widget); got != "three times per week on Monday, Wednesday and Friday at 00 minutes past 9am" {
		t.Errorf("line = %q", got)
	}
	if got := widget.Value(); got != "0 9 * * 1,3,5" {
		t.Errorf("Value() = %q", got)
	}

	mustSetValue(t, widget, "0 9 * * 1")
	if widget.Frequency() != 1 || len(widget.clones) != 0 {
		t.Errorf("single value left frequency %d and %d clones", widget.Frequency(), len(widget.clones))
	}
}

func TestMultiFrequencyListTooLong(t *testing.T) {
	widget := newTestWidget(t, func(options *Options) { options.MultiFrequency = true })
	var rangeError *cron.RangeError
	if err := widget.SetValue("0,10,20,30,40 * * * *"); !errors.As(err, &rangeError) {
		t.Errorf("error = %v, want *cron.RangeError", err)
	}
}

func TestMultiFrequencyRejectsListWithoutOption(t *testing.T) {
	widget := newTestWidget(t, func(options *Options) {
		options.MultiFrequency = true
		options.FrequencyOptions = []Frequency{{1, "once"}, {2, "twice"}, {4, "four times"}}
		options.Initial = "0 9,17 * * *"
	})

	var unsupported *cron.UnsupportedFormatError
	if err := widget.SetValue("0 8,12,16 * * *"); !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want *cron.UnsupportedFormatError", err)
	}
	if got := widget.Value(); got != "0 9,17 * * *" {
		t.Errorf("Value() = %q, want the previous value", got)
	}
	if got := widget.Frequency(); got != 2 {
		t.Errorf("Frequency() = %d, want 2", got)
	}

	mustSetValue(t, widget, "0 6,10,14,18 * * *")
	if got, clones := widget.Frequency(), len(widget.clones); got != 4 || clones != 3 {
		t.Errorf("Frequency() = %d with %d clones, want 4 with 3", got, clones)
	}

	_, err := New(Options{
		Initial:          "0 8,12,16 * * *",
		MultiFrequency:   true,
		FrequencyOptions: []Frequency{{1, "once"}, {2, "twice"}, {4, "four times"}},
	})
	if !errors.As(err, &unsupported) {
		t.Errorf("New error = %v, want *cron.UnsupportedFormatError", err)
	}
}

func TestFrequencyChangeAddsClones(t *testing.T) {
	widget := newTestWidget(t, func(options *Options) {
		options.MultiFrequency = true
		options.Initial = "0 9 * * *"
	})
	// Focus starts on the period; the frequency select sits before it.
	send(widget, keyPress(tea.KeyShiftTab), keyPress(tea.KeyEnter), keyPress(tea.KeyDown), keyPress(tea.KeyEnter))

	if got := widget.Frequency(); got != 2 {
		t.Fatalf("Frequency() = %d, want 2", got)
	}
	// The new clone starts as a copy of its primary.
	if got := widget.Value(); got != "0 9,9 * * *" {
		t.Errorf("Value() = %q", got)
	}
	names := widget.controls()
	if names[len(names)-1] != nameTimeHour+"#2" {
		t.Errorf("controls = %v, want the clone last", names)
	}
}

func TestMinutePeriodHasNoClones(t *testing.T) {
	widget := newTestWidget(t, func(options *Options) { options.MultiFrequency = true })
	send(widget, keyPress(tea.KeyShiftTab), keyPress(tea.KeyEnter), keyPress(tea.KeyDown), keyPress(tea.KeyEnter))
	if len(widget.clones) != 0 {
		t.Errorf("minute period has %d clones", len(widget.clones))
	}
	if got := widget.Value(); got != "* * * * *" {
		t.Errorf("Value() = %q", got)
	}
}

func TestCustomValues(t *testing.T) {
	widget := newTestWidget(t, func(options *Options) {
		options.CustomValues = []CustomValue{{Label: "at boot", Value: "@reboot"}}
	})
	// Custom values are listed before "minute", so up from minute reaches it.
	send(widget, keyPress(tea.KeyEnter), keyPress(tea.KeyUp), keyPress(tea.KeyEnter))

	if got := widget.Value(); got != "@reboot" {
		t.Errorf("Value() = %q, want the custom value", got)
	}
	if _, ok := widget.Category(); ok {
		t.Error("Category() ok = true for a custom value")
	}
	if got := lineText(widget); got != "at boot" {
		t.Errorf("line = %q", got)
	}
}

func TestMouseChoosesFromDialog(t *testing.T) {
	widget := newTestWidget(t, func(options *Options) { options.Initial = "9 10 * * *" })

	label, ok := widget.placement(nameTimeHour)
	if !ok {
		t.Fatal("no time-hour label on the line")
	}
	send(widget, tea.MouseMsg{X: label.x, Y: editorRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	open := widget.openSelect()
	if open == nil || open.Name != nameTimeHour {
		t.Fatalf("open select = %v, want time-hour", open)
	}
	if open.AnchorX != label.x+1 || open.AnchorY != editorRow+1 {
		t.Errorf("dialog anchored at (%d,%d), want (%d,%d)", open.AnchorX, open.AnchorY, label.x+1, editorRow+1)
	}

	// Two columns of twelve hours under a title line: 5pm is row 5 of
	// the second column.
	x := open.AnchorX + 6 + 1
	y := open.AnchorY + 1 + 5
	send(widget, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if got := widget.Value(); got != "9 17 * * *" {
		t.Errorf("Value() = %q, want %q", got, "9 17 * * *")
	}
	if widget.heat.Heat(nameTimeHour, testNow) <= 0 {
		t.Error("changed label is not glowing")
	}
}

func TestChangeGlowDecays(t *testing.T) {
	fake := clock.Fake(testNow)
	widget := newTestWidget(t, func(options *Options) {
		options.Initial = "5 * * * *"
		options.Clock = fake
	})
	widget.Update(keyPress(tea.KeyTab))
	widget.Update(keyPress(tea.KeyEnter))
	widget.Update(keyPress(tea.KeyDown))
	_, command := widget.Update(keyPress(tea.KeyEnter))
	if command == nil || !widget.tickRunning {
		t.Fatal("a change did not start the animation tick")
	}
	if widget.heat.Heat(nameMinute, fake.Now()) <= 0 {
		t.Fatal("changed label is not glowing")
	}

	fake.Advance(tui.HeatDecayDuration + time.Millisecond)
	_, command = widget.Update(gentleselect.AnimationMsg{Time: fake.Now()})
	if command != nil || widget.tickRunning {
		t.Error("tick still scheduled after the glow decayed")
	}
	if widget.heat.Heat(nameMinute, fake.Now()) != 0 {
		t.Error("glow did not decay")
	}
}

func TestSlideTransitionAdvances(t *testing.T) {
	fake := clock.Fake(testNow)
	widget := newTestWidget(t, func(options *Options) {
		options.Effects = gentleselect.DefaultEffects()
		options.Clock = fake
	})
	_, command := widget.Update(keyPress(tea.KeyEnter))
	if command == nil {
		t.Fatal("opening with a slide did not schedule a tick")
	}
	open := widget.openSelect()
	if open == nil || !open.Animating(fake.Now()) {
		t.Fatal("period dialog is not sliding open")
	}

	fake.Advance(gentleselect.DefaultSpeed)
	widget.Update(gentleselect.AnimationMsg{Time: fake.Now()})
	if open.Animating(fake.Now()) {
		t.Error("dialog still animating after the open speed elapsed")
	}
	if widget.tickRunning {
		t.Error("tick still running after the transition finished")
	}
}

func TestMouseHoverHighlights(t *testing.T) {
	widget := newTestWidget(t, nil)
	send(widget, tea.MouseMsg{X: editorMargin, Y: editorRow, Action: tea.MouseActionMotion})
	if widget.hover != namePeriod {
		t.Errorf("hover = %q, want period", widget.hover)
	}
	send(widget, tea.MouseMsg{X: 60, Y: editorRow, Action: tea.MouseActionMotion})
	if widget.hover != "" {
		t.Errorf("hover = %q, want none", widget.hover)
	}
}

func TestViewShowsDialogOverlay(t *testing.T) {
	widget := newTestWidget(t, func(options *Options) { options.Initial = "9 10 * * 6" })
	send(widget, keyPress(tea.KeyTab), keyPress(tea.KeyEnter))

	view := ansi.Strip(widget.View())
	for _, want := range []string{"week on Saturday", "Wednesday", "Schedule"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if help := ansi.Strip(widget.renderHelp()); !strings.Contains(help, "esc close") {
		t.Errorf("help = %q, want dialog keys", help)
	}

	send(widget, keyPress(tea.KeyEsc))
	if view := ansi.Strip(widget.View()); strings.Contains(view, "Wednesday") {
		t.Errorf("dialog still drawn after escape:\n%s", view)
	}
}

func TestQuit(t *testing.T) {
	widget := newTestWidget(t, nil)
	_, command := widget.Update(typed("q"))
	if command == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := command().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}
