// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package gentleselect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Effect is the animation used to open or close a dialog.
type Effect string

const (
	// EffectSlide reveals the dialog one row at a time from the top,
	// and hides it bottom-up.
	EffectSlide Effect = "slide"
	// EffectFade draws the dialog faint until the transition ends.
	EffectFade Effect = "fade"
)

// Named animation speeds, matching the conventional "slow" and "fast"
// durations of web animation libraries.
const (
	SpeedSlow    = 600 * time.Millisecond
	SpeedFast    = 200 * time.Millisecond
	DefaultSpeed = 400 * time.Millisecond
)

// DefaultMinWidth is the minimum dialog width, in cells, when the
// options are shown as a single column.
const DefaultMinWidth = 12

// Layout controls the shape of the popup grid. Widths are in terminal
// cells. Zero means unset.
type Layout struct {
	// MinWidth only applies when neither Columns nor Rows is set.
	MinWidth  int    `yaml:"min_width,omitempty"`
	ItemWidth int    `yaml:"item_width,omitempty"`
	Columns   int    `yaml:"columns,omitempty"`
	Rows      int    `yaml:"rows,omitempty"`
	Title     string `yaml:"title,omitempty"`
}

// Merge returns the layout with every non-zero field of over applied
// on top. Fields cannot be cleared this way: a zero in over means
// "keep the base value".
func (layout Layout) Merge(over Layout) Layout {
	if over.MinWidth != 0 {
		layout.MinWidth = over.MinWidth
	}
	if over.ItemWidth != 0 {
		layout.ItemWidth = over.ItemWidth
	}
	if over.Columns != 0 {
		layout.Columns = over.Columns
	}
	if over.Rows != 0 {
		layout.Rows = over.Rows
	}
	if over.Title != "" {
		layout.Title = over.Title
	}
	return layout
}

// Effects controls how a dialog appears and disappears. A zero speed
// shows or hides the dialog instantly.
type Effects struct {
	OpenSpeed      time.Duration
	CloseSpeed     time.Duration
	OpenEffect     Effect
	CloseEffect    Effect
	HideOnMouseOut bool
}

// DefaultEffects returns the default effect options: 400ms slides in
// both directions, hiding when the mouse leaves the dialog.
func DefaultEffects() Effects {
	return Effects{
		OpenSpeed:      DefaultSpeed,
		CloseSpeed:     DefaultSpeed,
		OpenEffect:     EffectSlide,
		CloseEffect:    EffectSlide,
		HideOnMouseOut: true,
	}
}

// Options is the complete configuration of one [Select].
type Options struct {
	Layout
	Effects
}

// DefaultOptions returns a single-column layout with default effects.
func DefaultOptions() Options {
	return Options{
		Layout:  Layout{MinWidth: DefaultMinWidth},
		Effects: DefaultEffects(),
	}
}

// Validate checks the options for contradictions. All problems are
// reported together.
func (options Options) Validate() error {
	var errs []error
	if options.Columns > 0 && options.Rows > 0 {
		errs = append(errs, errors.New("gentleselect: cannot set both rows and columns"))
	}
	if options.Columns > 0 && options.ItemWidth <= 0 {
		errs = append(errs, errors.New("gentleselect: item width must be set when columns is set"))
	}
	if options.Rows > 0 && options.ItemWidth <= 0 {
		errs = append(errs, errors.New("gentleselect: item width must be set when rows is set"))
	}
	if options.Columns < 0 || options.Rows < 0 || options.ItemWidth < 0 || options.MinWidth < 0 {
		errs = append(errs, errors.New("gentleselect: sizes must not be negative"))
	}
	if options.OpenSpeed < 0 {
		errs = append(errs, fmt.Errorf("gentleselect: open speed %v must not be negative", options.OpenSpeed))
	}
	if options.CloseSpeed < 0 {
		errs = append(errs, fmt.Errorf("gentleselect: close speed %v must not be negative", options.CloseSpeed))
	}
	if !options.OpenEffect.valid() {
		errs = append(errs, fmt.Errorf("gentleselect: open effect must be either %q or %q, got %q", EffectFade, EffectSlide, options.OpenEffect))
	}
	if !options.CloseEffect.valid() {
		errs = append(errs, fmt.Errorf("gentleselect: close effect must be either %q or %q, got %q", EffectFade, EffectSlide, options.CloseEffect))
	}
	return errors.Join(errs...)
}

func (effect Effect) valid() bool {
	return effect == EffectFade || effect == EffectSlide
}

// ParseEffect converts an effect name to an [Effect].
func ParseEffect(name string) (Effect, error) {
	effect := Effect(strings.ToLower(strings.TrimSpace(name)))
	if !effect.valid() {
		return "", fmt.Errorf("gentleselect: effect must be either %q or %q, got %q", EffectFade, EffectSlide, name)
	}
	return effect, nil
}

// ParseSpeed converts "slow", "fast", or a non-negative integer number
// of milliseconds to a duration.
func ParseSpeed(text string) (time.Duration, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "slow":
		return SpeedSlow, nil
	case "fast":
		return SpeedFast, nil
	}
	milliseconds, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || milliseconds < 0 {
		return 0, fmt.Errorf("gentleselect: speed must be a non-negative number of milliseconds or \"slow\" or \"fast\", got %q", text)
	}
	return time.Duration(milliseconds) * time.Millisecond, nil
}
