package component

import "github.com/lixenwraith/enemy-drift/core"

// BodyComponent holds the unbounded canvas position and fixed render size
type BodyComponent struct {
	X, Y          float64
	Width, Height float64
}

// Bounds returns the destination rectangle for drawing
func (b BodyComponent) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Wrap repositions the body toroidally once it fully leaves the canvas
// Leaving one edge places it just outside the opposite edge
func (b *BodyComponent) Wrap(canvasWidth, canvasHeight float64) {
	if b.X > canvasWidth {
		b.X = -b.Width
	}
	if b.X < -b.Width {
		b.X = canvasWidth
	}
	if b.Y > canvasHeight {
		b.Y = -b.Height
	}
	if b.Y < -b.Height {
		b.Y = canvasHeight
	}
}
