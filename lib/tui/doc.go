// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface pieces for the
// cron editor and its popup grid selects. Built on bubbletea (Elm
// architecture), it covers the parts the widgets have in common: the
// color theme, overlay splicing, change glow and open/close
// transitions, fuzzy type-ahead, and the centered notice modal.
//
// Widgets own their own state and layout and import this package for
// a consistent look.
package tui
