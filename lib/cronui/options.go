// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cronui

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cronedit/cronedit/lib/clock"
	"github.com/cronedit/cronedit/lib/gentleselect"
	"github.com/cronedit/cronedit/lib/tui"
)

// Submitter delivers a saved expression. [*cronsubmit.Client] is the
// production implementation.
type Submitter interface {
	Submit(ctx context.Context, value string) error
}

// ChangeFunc is called after every value mutation with the widget
// whose value changed.
type ChangeFunc func(widget *Widget)

// Frequency labels one multi-frequency count ("twice" for 2).
type Frequency struct {
	Count int
	Label string
}

// CustomValue is an extra period choice that stands for a fixed value.
// Choosing it makes [Widget.Value] return Value verbatim.
type CustomValue struct {
	Label string
	Value string
}

// Options configures a Widget. Start from [DefaultOptions]; zero
// fields fall back to the defaults where noted.
type Options struct {
	// Initial is the starting expression. Default: "* * * * *".
	Initial string

	// URLSet is the endpoint saved expressions are posted to. Empty
	// disables saving unless Submitter is set.
	URLSet string

	// Submitter overrides the HTTP client built from URLSet.
	Submitter Submitter

	// HTTPClient is used by the client built from URLSet. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// MultiFrequency allows each category's frequency field to hold
	// several values, chosen with an extra "once ... per" select.
	MultiFrequency bool

	// FrequencyOptions labels the frequency counts in order. Default:
	// once, twice, three times, four times.
	FrequencyOptions []Frequency

	// CustomValues are listed before the built-in periods.
	CustomValues []CustomValue

	// Effects are shared by every select. Zero means
	// [gentleselect.DefaultEffects].
	Effects gentleselect.Effects

	// Per-select layouts.
	Minute     gentleselect.Layout
	TimeHour   gentleselect.Layout
	DayOfMonth gentleselect.Layout
	Month      gentleselect.Layout
	DayOfWeek  gentleselect.Layout
	TimeMinute gentleselect.Layout

	// OnChange handlers run after every value mutation, including the
	// initial value.
	OnChange []ChangeFunc

	// Clock drives dialog transitions and change highlights. Defaults
	// to the real clock.
	Clock clock.Clock

	// Theme defaults to [tui.DefaultTheme].
	Theme *tui.Theme

	// Logger defaults to a logger that discards everything.
	Logger *slog.Logger
}

// DefaultInitial is the expression a widget starts with when none is
// configured.
const DefaultInitial = "* * * * *"

// DefaultFrequencyOptions returns the built-in multi-frequency labels.
func DefaultFrequencyOptions() []Frequency {
	return []Frequency{
		{Count: 1, Label: "once"},
		{Count: 2, Label: "twice"},
		{Count: 3, Label: "three times"},
		{Count: 4, Label: "four times"},
	}
}

// DefaultOptions returns the editor's default configuration. Layout
// widths are terminal cells, sized so each grid fits its longest label
// and its title.
func DefaultOptions() Options {
	return Options{
		Initial:          DefaultInitial,
		FrequencyOptions: DefaultFrequencyOptions(),
		Effects:          gentleselect.DefaultEffects(),
		Minute: gentleselect.Layout{
			MinWidth:  gentleselect.DefaultMinWidth,
			ItemWidth: 4,
			Columns:   4,
			Title:     "Minutes Past the Hour",
		},
		TimeHour: gentleselect.Layout{
			MinWidth:  gentleselect.DefaultMinWidth,
			ItemWidth: 4,
			Columns:   2,
			Title:     "Time: Hour",
		},
		DayOfMonth: gentleselect.Layout{
			MinWidth:  gentleselect.DefaultMinWidth,
			ItemWidth: 4,
			Rows:      10,
			Title:     "Day of Month",
		},
		Month: gentleselect.Layout{
			MinWidth:  gentleselect.DefaultMinWidth,
			ItemWidth: 9,
			Columns:   2,
		},
		DayOfWeek: gentleselect.Layout{
			MinWidth: gentleselect.DefaultMinWidth,
		},
		TimeMinute: gentleselect.Layout{
			MinWidth:  gentleselect.DefaultMinWidth,
			ItemWidth: 2,
			Columns:   4,
			Title:     "Time: Minute",
		},
	}
}
