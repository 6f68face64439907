package sprite

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lixenwraith/enemy-drift/core"
)

// Sheet is a horizontal strip of equally sized animation frames
type Sheet struct {
	Name        string
	Image       image.Image
	FrameWidth  int
	FrameHeight int
	Frames      int
}

// NewSheet wraps an image as a strip of frameWidth x frameHeight frames
// Frame count is derived from image width; a trailing partial frame is ignored
func NewSheet(name string, img image.Image, frameWidth, frameHeight int) (*Sheet, error) {
	b := img.Bounds()
	if frameWidth <= 0 || frameHeight <= 0 {
		return nil, ErrInvalidSize
	}
	if b.Dy() < frameHeight {
		return nil, fmt.Errorf("%s: %w (%d < %d)", name, ErrSheetMisshaped, b.Dy(), frameHeight)
	}
	return &Sheet{
		Name:        name,
		Image:       img,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		Frames:      b.Dx() / frameWidth,
	}, nil
}

// FrameRect returns the source sub-rectangle of a frame: (i*w, 0, w, h)
func (s *Sheet) FrameRect(frame int) core.Rect {
	return core.NewRect(
		float64(frame*s.FrameWidth),
		0,
		float64(s.FrameWidth),
		float64(s.FrameHeight),
	)
}

// At samples the sheet at sheet-local pixel coordinates, transparent outside the image
func (s *Sheet) At(x, y int) color.Color {
	b := s.Image.Bounds()
	px, py := b.Min.X+x, b.Min.Y+y
	if px < b.Min.X || px >= b.Max.X || py < b.Min.Y || py >= b.Max.Y {
		return color.Transparent
	}
	return s.Image.At(px, py)
}

// IsTransparent reports a fully transparent color
func IsTransparent(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a == 0
}

// ToRGBA un-premultiplies a color into 8-bit channels, black if transparent
func ToRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8((r * 0xff) / a),
		G: uint8((g * 0xff) / a),
		B: uint8((b * 0xff) / a),
		A: uint8(a >> 8),
	}
}
