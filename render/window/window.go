// Package window renders the canvas in a desktop window through ebiten, whose
// Update callback doubles as the display-refresh frame scheduler
package window

import (
	"context"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/enemy-drift/core"
	"github.com/lixenwraith/enemy-drift/sprite"
)

var outlineColor = color.RGBA{R: 0, G: 255, B: 120, A: 255}

// Surface draws into an offscreen canvas image copied to the window each frame
type Surface struct {
	canvas *ebiten.Image
	images map[*sprite.Sheet]*ebiten.Image
}

func newSurface(width, height int) *Surface {
	return &Surface{
		canvas: ebiten.NewImage(width, height),
		images: make(map[*sprite.Sheet]*ebiten.Image, 4),
	}
}

func (s *Surface) Clear(region core.Rect) {
	r := toImageRect(region).Intersect(s.canvas.Bounds())
	if r.Empty() {
		return
	}
	s.canvas.SubImage(r).(*ebiten.Image).Clear()
}

func (s *Surface) DrawSprite(sheet *sprite.Sheet, src, dst core.Rect) {
	if src.Empty() || dst.Empty() {
		return
	}
	frame := s.imageFor(sheet).SubImage(toImageRect(src)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/src.Width, dst.Height/src.Height)
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	s.canvas.DrawImage(frame, op)
}

func (s *Surface) DrawOutline(rect core.Rect) {
	vector.StrokeRect(s.canvas,
		float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height),
		1, outlineColor, false)
}

// imageFor converts a sheet once and caches the GPU image
func (s *Surface) imageFor(sheet *sprite.Sheet) *ebiten.Image {
	if img, ok := s.images[sheet]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(sheet.Image)
	s.images[sheet] = img
	return img
}

func toImageRect(r core.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
}

// Game adapts the window to ebiten.Game and acts as the frame scheduler
type Game struct {
	ctx     context.Context
	width   int
	height  int
	surface *Surface

	mu      sync.Mutex
	pending func()
}

// NewGame creates a window game of the given canvas size; cancelling ctx closes the window
func NewGame(ctx context.Context, width, height int) *Game {
	return &Game{
		ctx:     ctx,
		width:   width,
		height:  height,
		surface: newSurface(width, height),
	}
}

// Surface returns the drawing surface backing the window
func (g *Game) Surface() *Surface {
	return g.surface
}

// RequestFrame registers the callback to run on the next Update
func (g *Game) RequestFrame(fn func()) {
	g.mu.Lock()
	g.pending = fn
	g.mu.Unlock()
}

// Update runs the pending frame callback once per display refresh
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	g.mu.Lock()
	fn := g.pending
	g.pending = nil
	g.mu.Unlock()

	if fn != nil {
		fn()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.canvas, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or ctx is cancelled
// Must be called from the main goroutine
func (g *Game) Run(title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
