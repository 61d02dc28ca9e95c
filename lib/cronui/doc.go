// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

// Package cronui is the cron editor widget: a single line of
// human-readable controls ("week on Monday at 30 minutes past 9am")
// backed by gentle selects, that reads and writes a restricted cron
// expression.
//
// A [Widget] is a bubbletea model. It owns the complete editor state
// (selected period, multi-frequency count, the last saved value, the
// changed and busy flags, any failure notice, and keyboard focus) and
// is always handled by pointer.
//
// Reading and writing go through package cron: [Widget.SetValue]
// classifies the expression and projects it onto the visible selects
// with [cron.ToFields]; [Widget.Value] rebuilds the expression from
// the selects with [cron.FromUIState]. Every value mutation runs the
// registered change handlers.
//
// When saving is enabled, a save control appears while the editor
// shows something other than the last saved value. Saving posts the
// value through a [Submitter] on bubbletea's command goroutine; the
// result comes back as a message. A failed save raises a blocking
// notice and keeps the changed state so the user can retry.
package cronui
