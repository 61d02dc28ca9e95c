// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

// Package gentleselect is a terminal replacement for a native dropdown:
// an inline label that, when activated, opens a popup dialog laying the
// options out as a grid.
//
// A [Select] does not own a bubbletea program. The owning model renders
// the label where it wants it, routes key and mouse input to the open
// dialog, splices [Select.RenderDialog] onto its view with
// [tui.SpliceOverlay], and drives open/close animations by calling
// [Select.Advance] on each [AnimationMsg].
//
// Grid layout follows the column-major order of the popup: with
// Columns set, the option count fixes the number of rows, and options
// run down each column before moving right. Unused cells at the end of
// the grid are dummies that close the dialog without a change when
// chosen.
package gentleselect
