package core

// Rect represents an axis-aligned region in canvas pixels
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Point is a canvas position
type Point struct {
	X, Y float64
}

// NewRect builds a rect from position and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the exclusive right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the rect covers no area
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside the half-open rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the overlap of two rects, zero-sized if disjoint
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
