// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// HeatDecayDuration is how long a label glows after its value changes.
// Heat starts at 1.0 and decays linearly to 0.0 over this duration.
const HeatDecayDuration = 2 * time.Second

// AnimationTickInterval is the re-render interval while any glow or
// dialog transition is running. 50ms gives ~20fps, which is plenty
// for terminal color steps.
const AnimationTickInterval = 50 * time.Millisecond

// HeatTracker maps control names to ignition timestamps for animated
// change highlighting. Each change "ignites" a control, which then
// decays from full intensity to zero over [HeatDecayDuration].
type HeatTracker struct {
	entries map[string]time.Time
}

// NewHeatTracker creates an empty heat tracker.
func NewHeatTracker() *HeatTracker {
	return &HeatTracker{
		entries: make(map[string]time.Time),
	}
}

// Ignite records a change for a control. Resets the decay timer if
// the control was already hot.
func (tracker *HeatTracker) Ignite(name string, now time.Time) {
	tracker.entries[name] = now
}

// Heat returns the current intensity for a control: 1.0 at ignition,
// linearly decaying to 0.0 over [HeatDecayDuration].
func (tracker *HeatTracker) Heat(name string, now time.Time) float64 {
	ignition, exists := tracker.entries[name]
	if !exists {
		return 0.0
	}
	elapsed := now.Sub(ignition)
	if elapsed >= HeatDecayDuration {
		return 0.0
	}
	return 1.0 - float64(elapsed)/float64(HeatDecayDuration)
}

// HasHot returns true if any tracked control still has heat > 0,
// meaning the tick timer should keep running for animation.
func (tracker *HeatTracker) HasHot(now time.Time) bool {
	hot := false
	for name, ignition := range tracker.entries {
		if now.Sub(ignition) < HeatDecayDuration {
			hot = true
			continue
		}
		// Garbage-collect fully decayed entries.
		delete(tracker.entries, name)
	}
	return hot
}

// Transition is a timed open or close animation. The zero value is an
// idle transition that reports itself as finished.
type Transition struct {
	Start    time.Time
	Duration time.Duration
	Opening  bool
}

// NewTransition starts a transition at now. A non-positive duration
// produces a transition that is already finished.
func NewTransition(opening bool, duration time.Duration, now time.Time) Transition {
	return Transition{Start: now, Duration: duration, Opening: opening}
}

// Progress returns how far the transition has run, from 0.0 at start
// to 1.0 when finished.
func (transition Transition) Progress(now time.Time) float64 {
	if transition.Duration <= 0 || transition.Start.IsZero() {
		return 1.0
	}
	elapsed := now.Sub(transition.Start)
	if elapsed <= 0 {
		return 0.0
	}
	if elapsed >= transition.Duration {
		return 1.0
	}
	return float64(elapsed) / float64(transition.Duration)
}

// Visibility returns how much of the animated element is showing:
// rising from 0 to 1 while opening, falling from 1 to 0 while closing.
func (transition Transition) Visibility(now time.Time) float64 {
	progress := transition.Progress(now)
	if transition.Opening {
		return progress
	}
	return 1.0 - progress
}

// Done reports whether the transition has finished.
func (transition Transition) Done(now time.Time) bool {
	return transition.Progress(now) >= 1.0
}
