package dropzone

import "github.com/akyairhashvil/gridswap/internal/geometry"

// Bounds is a container's screen rectangle in page space.
type Bounds struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
	Width  float64
	Height float64
}

// NewBounds builds a rectangle from its top-left corner and size.
func NewBounds(left, top, width, height float64) Bounds {
	return Bounds{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
		Width:  width,
		Height: height,
	}
}

// Contains reports whether (x, y) lies strictly inside the rectangle. Points
// on an edge belong to neither neighbour.
func (b Bounds) Contains(x, y float64) bool {
	return x > b.Left && x < b.Right && y > b.Top && y < b.Bottom
}

// Offset returns the rectangle's top-left corner.
func (b Bounds) Offset() geometry.Position {
	return geometry.Position{X: b.Left, Y: b.Top}
}
