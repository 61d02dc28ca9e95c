// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package gentleselect

import "testing"

func TestGridColumns(t *testing.T) {
	g := computeGrid(7, nil, Layout{Columns: 3, ItemWidth: 4})
	if g.rows != 3 || g.columns != 3 {
		t.Fatalf("grid = %d rows x %d columns, want 3x3", g.rows, g.columns)
	}
	if g.cells() != 9 {
		t.Errorf("cells = %d, want 9 (two dummies)", g.cells())
	}
	if g.width != 18 {
		t.Errorf("width = %d, want (4+2)*3", g.width)
	}
}

func TestGridRows(t *testing.T) {
	g := computeGrid(31, nil, Layout{Rows: 10, ItemWidth: 4})
	if g.rows != 10 || g.columns != 4 {
		t.Fatalf("grid = %d rows x %d columns, want 10x4", g.rows, g.columns)
	}
	if g.cells()-31 != 9 {
		t.Errorf("dummy cells = %d, want 9", g.cells()-31)
	}
}

func TestGridColumnMajor(t *testing.T) {
	g := computeGrid(7, nil, Layout{Columns: 3, ItemWidth: 4})
	tests := []struct {
		cell, row, column int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2, 2, 0},
		{3, 0, 1},
		{4, 1, 1},
		{6, 0, 2},
		{8, 2, 2},
	}
	for _, test := range tests {
		row, column := g.position(test.cell)
		if row != test.row || column != test.column {
			t.Errorf("position(%d) = (%d,%d), want (%d,%d)", test.cell, row, column, test.row, test.column)
		}
		if back := g.cellAt(row, column); back != test.cell {
			t.Errorf("cellAt(%d,%d) = %d, want %d", row, column, back, test.cell)
		}
	}
	if g.cellAt(3, 0) != -1 || g.cellAt(0, 3) != -1 {
		t.Error("cellAt outside the grid should be -1")
	}
}

func TestGridSingleColumn(t *testing.T) {
	short := computeGrid(3, []string{"a", "bb", "ccc"}, Layout{MinWidth: 12})
	if short.columns != 1 || short.rows != 3 || short.width != 12 {
		t.Errorf("short labels: %+v, want 1 column of 3 rows, width 12", short)
	}

	long := computeGrid(2, []string{"Wednesday", "a much longer label"}, Layout{MinWidth: 12})
	if long.width != len("a much longer label")+2 {
		t.Errorf("long labels width = %d, want %d", long.width, len("a much longer label")+2)
	}

	titled := computeGrid(1, []string{"x"}, Layout{MinWidth: 4, Title: "Minutes Past the Hour"})
	if titled.width != len("Minutes Past the Hour")+2 {
		t.Errorf("titled width = %d, want room for the title", titled.width)
	}
}

func TestGridEmpty(t *testing.T) {
	g := computeGrid(0, nil, Layout{Columns: 4, ItemWidth: 3})
	if g.rows != 0 || g.cells() != 0 {
		t.Errorf("empty grid = %+v, want no rows", g)
	}
}
