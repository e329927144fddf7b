package geometry

import (
	"math"
	"testing"
)

func TestTargetIndexForDragSmallNudge(t *testing.T) {
	g := Grid{Columns: 3, ColumnWidth: 50, RowHeight: 50}
	if got := TargetIndexForDrag(0, g, 9, 52, 2); got != 1 {
		t.Fatalf("TargetIndexForDrag() = %d, want 1", got)
	}
}

func TestTargetIndexForDragThreeByThree(t *testing.T) {
	g := Grid{Columns: 3, ColumnWidth: 100, RowHeight: 100}
	if got := TargetIndexForDrag(0, g, 9, 210, 10); got != 2 {
		t.Fatalf("TargetIndexForDrag() = %d, want 2", got)
	}
}

func TestIndexToPosition(t *testing.T) {
	type tc struct {
		index int
		grid  Grid
		want  Position
	}

	tests := map[string]tc{
		"first cell": {
			index: 0,
			grid:  Grid{Columns: 3, ColumnWidth: 40, RowHeight: 20},
			want:  Position{},
		},
		"end of first row": {
			index: 2,
			grid:  Grid{Columns: 3, ColumnWidth: 40, RowHeight: 20},
			want:  Position{X: 80},
		},
		"wraps to second row": {
			index: 4,
			grid:  Grid{Columns: 3, ColumnWidth: 40, RowHeight: 20},
			want:  Position{X: 40, Y: 20},
		},
		"unmeasured width": {
			index: 4,
			grid:  Grid{Columns: 3, RowHeight: 20},
			want:  Position{Y: 20},
		},
		"zero columns": {
			index: 7,
			grid:  Grid{ColumnWidth: 10, RowHeight: 10},
			want:  Position{},
		},
		"negative index": {
			index: -1,
			grid:  Grid{Columns: 3, ColumnWidth: 40, RowHeight: 20},
			want:  Position{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := IndexToPosition(tt.index, tt.grid); got != tt.want {
				t.Errorf("IndexToPosition(%d) = %+v, want %+v", tt.index, got, tt.want)
			}
		})
	}
}

func TestShiftLaw(t *testing.T) {
	grids := []Grid{
		{Columns: 3, ColumnWidth: 50, RowHeight: 50},
		{Columns: 1, ColumnWidth: 120, RowHeight: 30},
		{Columns: 4, ColumnWidth: 0, RowHeight: 10},
		{Columns: 0, ColumnWidth: 10, RowHeight: 10},
	}
	for _, g := range grids {
		if got, want := IndexToPositionExcluding(4, g, 2), IndexToPosition(5, g); got != want {
			t.Fatalf("grid %+v: excluding = %+v, want %+v", g, got, want)
		}
		if got, want := IndexToPositionExcluding(1, g, 2), IndexToPosition(1, g); got != want {
			t.Fatalf("grid %+v: before gap = %+v, want %+v", g, got, want)
		}
	}
}

func TestPositionToIndexClamp(t *testing.T) {
	g := Grid{Columns: 3, ColumnWidth: 10, RowHeight: 10}
	for x := -15.0; x < 60; x += 3.5 {
		for y := -15.0; y < 60; y += 3.5 {
			got := PositionToIndex(x, y, g, 5)
			if got < 0 || got > 5 {
				t.Fatalf("PositionToIndex(%v, %v) = %d, out of [0,5]", x, y, got)
			}
			raw := int(math.Floor(y/10))*3 + int(math.Floor(x/10))
			if raw >= 5 && got != 5 {
				t.Fatalf("PositionToIndex(%v, %v) = %d, want clamp to 5", x, y, got)
			}
			if raw >= 0 && raw < 5 && got != raw {
				t.Fatalf("PositionToIndex(%v, %v) = %d, want %d", x, y, got, raw)
			}
		}
	}
}

func TestPositionToIndexDegenerate(t *testing.T) {
	type tc struct {
		x, y  float64
		grid  Grid
		count int
	}

	tests := map[string]tc{
		"unmeasured": {x: 30, y: 30, grid: Grid{Columns: 3, RowHeight: 10}, count: 9},
		"no rows":    {x: 30, y: 30, grid: Grid{Columns: 3, ColumnWidth: 10}, count: 9},
		"nan input":  {x: math.NaN(), y: 1, grid: Grid{Columns: 3, ColumnWidth: 10, RowHeight: 10}, count: 9},
		"inf input":  {x: 1, y: math.Inf(1), grid: Grid{Columns: 3, ColumnWidth: 10, RowHeight: 10}, count: 9},
		"empty list": {x: 15, y: 15, grid: Grid{Columns: 3, ColumnWidth: 10, RowHeight: 10}, count: 0},
		"no columns": {x: 15, y: 15, grid: Grid{ColumnWidth: 10, RowHeight: 10}, count: 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := PositionToIndex(tt.x, tt.y, tt.grid, tt.count); got != 0 {
				t.Errorf("PositionToIndex() = %d, want 0", got)
			}
		})
	}
}

func TestProjectedDragPosition(t *testing.T) {
	g := Grid{Columns: 2, ColumnWidth: 30, RowHeight: 20}
	corner := ProjectedDragPosition(3, g, 5, -5, false)
	if corner != (Position{X: 35, Y: 15}) {
		t.Fatalf("corner = %+v", corner)
	}
	center := ProjectedDragPosition(3, g, 5, -5, true)
	if center != (Position{X: 50, Y: 25}) {
		t.Fatalf("center = %+v", center)
	}
}

func TestDerive(t *testing.T) {
	g := Derive(300, 3, 40)
	if g.ColumnWidth != 100 || !g.Measured() {
		t.Fatalf("Derive(300, 3, 40) = %+v", g)
	}
	if g := Derive(0, 3, 40); g.Measured() {
		t.Fatalf("Derive(0, 3, 40) reported measured: %+v", g)
	}
	if g := Derive(300, 0, 40); g.ColumnWidth != 0 {
		t.Fatalf("Derive with zero columns = %+v", g)
	}
	if rows := g.Rows(7); rows != 3 {
		t.Fatalf("Rows(7) = %d, want 3", rows)
	}
}
