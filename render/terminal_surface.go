package render

import (
	"image/color"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/enemy-drift/core"
	"github.com/lixenwraith/enemy-drift/sprite"
)

// halfBlock carries the top sample in foreground and the bottom sample in background
const halfBlock = '▀'

var (
	// RgbBackground is the cleared canvas color
	RgbBackground = color.RGBA{R: 12, G: 12, B: 20, A: 255}

	// RgbOutline is the debug bounding box color
	RgbOutline = color.RGBA{R: 0, G: 255, B: 120, A: 255}
)

// TerminalSurface rasterizes the canvas onto a tcell screen
// The canvas is stretched over the screen; every cell holds two vertical samples
type TerminalSurface struct {
	mu     sync.Mutex
	screen tcell.Screen

	canvasW, canvasH float64

	cols, rows int
	pixels     []color.RGBA // cols x rows*2 samples, row-major
}

// NewTerminalSurface wraps an initialized screen
func NewTerminalSurface(screen tcell.Screen, canvasW, canvasH float64) *TerminalSurface {
	t := &TerminalSurface{
		screen:  screen,
		canvasW: canvasW,
		canvasH: canvasH,
	}
	t.resize()
	return t
}

// Resize re-reads the screen size; call after a tcell resize event
func (t *TerminalSurface) Resize() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resize()
}

func (t *TerminalSurface) resize() {
	cols, rows := t.screen.Size()
	t.cols = max(cols, 0)
	t.rows = max(rows, 0)
	size := t.cols * t.rows * 2
	if cap(t.pixels) < size {
		t.pixels = make([]color.RGBA, size)
	} else {
		t.pixels = t.pixels[:size]
	}
	for i := range t.pixels {
		t.pixels[i] = RgbBackground
	}
}

// sampleSize returns canvas pixels per sample column and per sample row
func (t *TerminalSurface) sampleSize() (float64, float64) {
	return t.canvasW / float64(t.cols), t.canvasH / float64(t.rows*2)
}

// sampleRange returns the sample indices whose centers fall inside [lo, hi)
func sampleRange(lo, hi, step float64, limit int) (int, int) {
	first := int(math.Ceil(lo/step - 0.5))
	last := int(math.Ceil(hi/step-0.5)) - 1
	return max(first, 0), min(last, limit-1)
}

func (t *TerminalSurface) Clear(region core.Rect) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cols == 0 || t.rows == 0 {
		return
	}

	sw, sh := t.sampleSize()
	gw, gh := t.cols, t.rows*2
	x0, x1 := sampleRange(region.X, region.Right(), sw, gw)
	y0, y1 := sampleRange(region.Y, region.Bottom(), sh, gh)
	for y := y0; y <= y1; y++ {
		row := t.pixels[y*gw : (y+1)*gw]
		for x := x0; x <= x1; x++ {
			row[x] = RgbBackground
		}
	}
}

// DrawSprite samples the source rect at each covered sample center, skipping transparent pixels
func (t *TerminalSurface) DrawSprite(sheet *sprite.Sheet, src, dst core.Rect) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cols == 0 || t.rows == 0 || dst.Empty() || src.Empty() {
		return
	}

	sw, sh := t.sampleSize()
	gw, gh := t.cols, t.rows*2
	x0, x1 := sampleRange(dst.X, dst.Right(), sw, gw)
	y0, y1 := sampleRange(dst.Y, dst.Bottom(), sh, gh)

	for y := y0; y <= y1; y++ {
		cy := (float64(y) + 0.5) * sh
		v := (cy - dst.Y) / dst.Height
		sy := int(src.Y + v*src.Height)
		for x := x0; x <= x1; x++ {
			cx := (float64(x) + 0.5) * sw
			u := (cx - dst.X) / dst.Width
			sx := int(src.X + u*src.Width)

			c := sheet.At(sx, sy)
			if sprite.IsTransparent(c) {
				continue
			}
			idx := y*gw + x
			t.pixels[idx] = blendOver(t.pixels[idx], sprite.ToRGBA(c))
		}
	}
}

func (t *TerminalSurface) DrawOutline(rect core.Rect) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cols == 0 || t.rows == 0 || rect.Empty() {
		return
	}

	sw, sh := t.sampleSize()
	gw, gh := t.cols, t.rows*2
	left := int(math.Floor(rect.X / sw))
	right := int(math.Floor((rect.Right() - 1e-9) / sw))
	top := int(math.Floor(rect.Y / sh))
	bottom := int(math.Floor((rect.Bottom() - 1e-9) / sh))

	set := func(x, y int) {
		if x < 0 || x >= gw || y < 0 || y >= gh {
			return
		}
		t.pixels[y*gw+x] = RgbOutline
	}
	for x := left; x <= right; x++ {
		set(x, top)
		set(x, bottom)
	}
	for y := top; y <= bottom; y++ {
		set(left, y)
		set(right, y)
	}
}

// Present flushes the sample buffer to the screen and shows it
func (t *TerminalSurface) Present() {
	t.mu.Lock()
	defer t.mu.Unlock()

	gw := t.cols
	for row := 0; row < t.rows; row++ {
		top := t.pixels[(row*2)*gw : (row*2+1)*gw]
		bottom := t.pixels[(row*2+1)*gw : (row*2+2)*gw]
		for x := 0; x < gw; x++ {
			style := tcell.StyleDefault.Foreground(toTcell(top[x])).Background(toTcell(bottom[x]))
			t.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

// Sample returns the buffered color at a sample coordinate, for inspection
func (t *TerminalSurface) Sample(x, y int) (color.RGBA, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	gw, gh := t.cols, t.rows*2
	if x < 0 || x >= gw || y < 0 || y >= gh {
		return color.RGBA{}, false
	}
	return t.pixels[y*gw+x], true
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blendOver composites a non-premultiplied src with alpha over an opaque dst
func blendOver(dst, src color.RGBA) color.RGBA {
	if src.A == 255 {
		return src
	}
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return color.RGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}
