// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package gentleselect

import "github.com/charmbracelet/x/ansi"

// cellPadding is one blank cell on each side of an item.
const cellPadding = 2

// grid is the computed arrangement of a dialog's cells.
type grid struct {
	rows    int
	columns int
	// itemWidth is the content width of one cell, excluding padding.
	itemWidth int
	// width is the full dialog width.
	width int
}

// computeGrid arranges count items according to the layout. Without
// Columns or Rows the items form a single column wide enough for the
// longest label (and the title), and at least MinWidth.
func computeGrid(count int, labels []string, layout Layout) grid {
	switch {
	case layout.Columns > 0:
		columns := layout.Columns
		rows := ceilDiv(count, columns)
		return grid{rows: rows, columns: columns, itemWidth: layout.ItemWidth, width: (layout.ItemWidth + cellPadding) * columns}
	case layout.Rows > 0:
		rows := layout.Rows
		columns := ceilDiv(count, rows)
		return grid{rows: rows, columns: columns, itemWidth: layout.ItemWidth, width: (layout.ItemWidth + cellPadding) * columns}
	}

	widest := 0
	for _, label := range labels {
		if width := ansi.StringWidth(label); width > widest {
			widest = width
		}
	}
	if width := ansi.StringWidth(layout.Title); width > widest {
		widest = width
	}
	if layout.MinWidth-cellPadding > widest {
		widest = layout.MinWidth - cellPadding
	}
	return grid{rows: count, columns: 1, itemWidth: widest, width: widest + cellPadding}
}

// cells is the number of grid cells, including dummy padding.
func (g grid) cells() int {
	return g.rows * g.columns
}

// position returns the row and column of a cell. Cells fill the grid
// column-major: down the first column, then down the next.
func (g grid) position(cell int) (row, column int) {
	if g.rows == 0 {
		return 0, 0
	}
	return cell % g.rows, cell / g.rows
}

// cellAt returns the cell at a row and column, or -1 outside the grid.
func (g grid) cellAt(row, column int) int {
	if row < 0 || row >= g.rows || column < 0 || column >= g.columns {
		return -1
	}
	return column*g.rows + row
}

func ceilDiv(numerator, denominator int) int {
	if numerator <= 0 {
		return 0
	}
	return (numerator + denominator - 1) / denominator
}
