package render

import (
	"github.com/lixenwraith/enemy-drift/core"
	"github.com/lixenwraith/enemy-drift/sprite"
)

// Surface is the drawing target shared by all entities within a tick
type Surface interface {
	// Clear erases a canvas region
	Clear(region core.Rect)
	// DrawSprite paints src of the sheet scaled into dst
	DrawSprite(sheet *sprite.Sheet, src, dst core.Rect)
	// DrawOutline strokes a rectangle border
	DrawOutline(rect core.Rect)
}

// Presenter is optionally implemented by surfaces that buffer a frame until shown
type Presenter interface {
	Present()
}
