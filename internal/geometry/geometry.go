// Package geometry maps between linear list indexes and pixel positions in a
// fixed-column grid. Every function is pure and never panics; degenerate
// grids collapse to the origin.
package geometry

import "math"

// Grid describes the cell layout of one container.
type Grid struct {
	Columns     int
	ColumnWidth float64 // 0 until the container is measured
	RowHeight   float64
}

// Position is a pixel offset from a container's top-left corner.
type Position struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of p and o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference p - o.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Derive builds the grid of a container measured at width pixels.
func Derive(width float64, columns int, rowHeight float64) Grid {
	g := Grid{Columns: columns, RowHeight: rowHeight}
	if columns > 0 && finite(width) && width > 0 {
		g.ColumnWidth = width / float64(columns)
	}
	return g
}

// Measured reports whether the grid has usable cell dimensions. Drag
// interaction must not be offered until it does.
func (g Grid) Measured() bool {
	return g.Columns > 0 && finite(g.ColumnWidth) && g.ColumnWidth > 0 &&
		finite(g.RowHeight) && g.RowHeight > 0
}

// Rows returns the number of rows needed to hold count items.
func (g Grid) Rows(count int) int {
	if g.Columns <= 0 || count <= 0 {
		return 0
	}
	return (count + g.Columns - 1) / g.Columns
}

// IndexToPosition returns the top-left corner of the cell at index.
func IndexToPosition(index int, g Grid) Position {
	if g.Columns <= 0 || index < 0 {
		return Position{}
	}
	col := index % g.Columns
	row := index / g.Columns
	return Position{
		X: float64(col) * sanitize(g.ColumnWidth),
		Y: float64(row) * sanitize(g.RowHeight),
	}
}

// IndexToPositionExcluding lays index out as if a gap were held open at
// excluded: indexes at or past the gap shift one slot later.
func IndexToPositionExcluding(index int, g Grid, excluded int) Position {
	if index >= excluded {
		index++
	}
	return IndexToPosition(index, g)
}

// PositionToIndex returns the index of the cell containing (x, y), clamped
// to [0, itemCount]. A result equal to itemCount means append at the end.
func PositionToIndex(x, y float64, g Grid, itemCount int) int {
	if itemCount <= 0 || !g.Measured() || !finite(x) || !finite(y) {
		return 0
	}
	row := math.Floor(y / g.RowHeight)
	col := math.Floor(x / g.ColumnWidth)
	raw := row*float64(g.Columns) + col
	if raw >= float64(itemCount) {
		return itemCount
	}
	if raw < 0 {
		return 0
	}
	return int(raw)
}

// ProjectedDragPosition returns where the cell at index sits after being
// dragged by (dx, dy). With centerOffset the cell's midpoint is returned so
// the drag is credited to the cell it overlaps most.
func ProjectedDragPosition(index int, g Grid, dx, dy float64, centerOffset bool) Position {
	p := IndexToPosition(index, g).Add(Position{X: sanitize(dx), Y: sanitize(dy)})
	if centerOffset {
		p = p.Add(CenterOffset(g))
	}
	return p
}

// CenterOffset is the vector from a cell's corner to its midpoint.
func CenterOffset(g Grid) Position {
	return Position{X: sanitize(g.ColumnWidth) / 2, Y: sanitize(g.RowHeight) / 2}
}

// TargetIndexForDrag returns the slot a cell starting at startIndex occupies
// after a drag of (dx, dy).
func TargetIndexForDrag(startIndex int, g Grid, itemCount int, dx, dy float64) int {
	p := ProjectedDragPosition(startIndex, g, dx, dy, true)
	return PositionToIndex(p.X, p.Y, g, itemCount)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func sanitize(f float64) float64 {
	if !finite(f) {
		return 0
	}
	return f
}
