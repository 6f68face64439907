package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/enemy-drift/core"
	"github.com/lixenwraith/enemy-drift/sprite"
)

type cell struct {
	r     rune
	style tcell.Style
}

// MockScreen is a minimal mock for tcell.Screen that records cell writes
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]cell
	shows         int
}

func newMockScreen(w, h int) *MockScreen {
	return &MockScreen{width: w, height: h, cells: make(map[[2]int]cell)}
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }
func (m *MockScreen) Show()            { m.shows++ }
func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = cell{r: mainc, style: style}
}

// solidSheet builds a sheet of frames frameW x frameH, each filled with its own color
func solidSheet(frameW, frameH int, fills ...color.RGBA) *sprite.Sheet {
	img := image.NewRGBA(image.Rect(0, 0, frameW*len(fills), frameH))
	for f, c := range fills {
		for y := 0; y < frameH; y++ {
			for x := 0; x < frameW; x++ {
				img.SetRGBA(f*frameW+x, y, c)
			}
		}
	}
	return &sprite.Sheet{Name: "test", Image: img, FrameWidth: frameW, FrameHeight: frameH, Frames: len(fills)}
}

func expectSample(t *testing.T, s *TerminalSurface, x, y int, want color.RGBA) {
	t.Helper()
	got, ok := s.Sample(x, y)
	if !ok {
		t.Fatalf("Sample (%d, %d) out of range", x, y)
	}
	if got != want {
		t.Errorf("Sample (%d, %d): expected %+v, got %+v", x, y, want, got)
	}
}

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func TestTerminalSurface_DrawSpriteCoversDestination(t *testing.T) {
	// 10 columns x 5 rows = 10x10 samples over a 10x10 canvas
	s := NewTerminalSurface(newMockScreen(10, 5), 10, 10)
	sheet := solidSheet(4, 4, red, blue)

	s.DrawSprite(sheet, sheet.FrameRect(1), core.NewRect(2, 2, 4, 4))

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := RgbBackground
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = blue
			}
			expectSample(t, s, x, y, want)
		}
	}
}

func TestTerminalSurface_ScalesSource(t *testing.T) {
	s := NewTerminalSurface(newMockScreen(10, 5), 10, 10)
	// One 2x2 frame with distinct quadrants stretched over 8x8 samples
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 0, blue)
	img.SetRGBA(0, 1, blue)
	img.SetRGBA(1, 1, red)
	sheet := &sprite.Sheet{Image: img, FrameWidth: 2, FrameHeight: 2, Frames: 1}

	s.DrawSprite(sheet, sheet.FrameRect(0), core.NewRect(0, 0, 8, 8))

	expectSample(t, s, 1, 1, red)
	expectSample(t, s, 6, 1, blue)
	expectSample(t, s, 1, 6, blue)
	expectSample(t, s, 6, 6, red)
}

func TestTerminalSurface_TransparentPixelsSkipped(t *testing.T) {
	s := NewTerminalSurface(newMockScreen(10, 5), 10, 10)
	s.DrawSprite(solidSheet(4, 4, red), core.NewRect(0, 0, 4, 4), core.NewRect(0, 0, 4, 4))
	s.DrawSprite(solidSheet(4, 4, color.RGBA{}), core.NewRect(0, 0, 4, 4), core.NewRect(0, 0, 4, 4))
	expectSample(t, s, 1, 1, red)
}

func TestTerminalSurface_AlphaBlends(t *testing.T) {
	s := NewTerminalSurface(newMockScreen(10, 5), 10, 10)
	s.DrawSprite(solidSheet(4, 4, red), core.NewRect(0, 0, 4, 4), core.NewRect(0, 0, 4, 4))
	// Premultiplied half-transparent blue
	half := color.RGBA{B: 128, A: 128}
	s.DrawSprite(solidSheet(4, 4, half), core.NewRect(0, 0, 4, 4), core.NewRect(0, 0, 4, 4))

	got, _ := s.Sample(1, 1)
	if got.R < 120 || got.R > 135 || got.B < 120 || got.B > 135 {
		t.Errorf("Expected roughly even red/blue mix, got %+v", got)
	}
}

func TestTerminalSurface_ClipsOffscreen(t *testing.T) {
	s := NewTerminalSurface(newMockScreen(10, 5), 10, 10)
	sheet := solidSheet(4, 4, red)

	// Partly off every edge; must not panic and must paint the visible part
	s.DrawSprite(sheet, sheet.FrameRect(0), core.NewRect(-2, -2, 4, 4))
	s.DrawSprite(sheet, sheet.FrameRect(0), core.NewRect(8, 8, 4, 4))
	s.DrawSprite(sheet, sheet.FrameRect(0), core.NewRect(50, 50, 4, 4))

	expectSample(t, s, 0, 0, red)
	expectSample(t, s, 9, 9, red)
	expectSample(t, s, 5, 5, RgbBackground)
}

func TestTerminalSurface_ClearRegion(t *testing.T) {
	s := NewTerminalSurface(newMockScreen(10, 5), 10, 10)
	sheet := solidSheet(10, 10, red)
	s.DrawSprite(sheet, sheet.FrameRect(0), core.NewRect(0, 0, 10, 10))

	s.Clear(core.NewRect(0, 0, 5, 10))
	expectSample(t, s, 4, 4, RgbBackground)
	expectSample(t, s, 5, 4, red)
}

func TestTerminalSurface_Outline(t *testing.T) {
	s := NewTerminalSurface(newMockScreen(10, 5), 10, 10)
	s.DrawOutline(core.NewRect(2, 2, 4, 4))

	expectSample(t, s, 2, 2, RgbOutline)
	expectSample(t, s, 5, 2, RgbOutline)
	expectSample(t, s, 2, 5, RgbOutline)
	expectSample(t, s, 5, 5, RgbOutline)
	expectSample(t, s, 3, 3, RgbBackground)
}

func TestTerminalSurface_PresentWritesHalfBlocks(t *testing.T) {
	screen := newMockScreen(10, 5)
	s := NewTerminalSurface(screen, 10, 10)
	sheet := solidSheet(1, 1, red)
	// Sample row 2 is the top half of cell row 1
	s.DrawSprite(sheet, sheet.FrameRect(0), core.NewRect(3, 2, 1, 1))
	s.Present()

	if screen.shows != 1 {
		t.Errorf("Expected 1 Show, got %d", screen.shows)
	}
	if len(screen.cells) != 50 {
		t.Errorf("Expected 50 cells written, got %d", len(screen.cells))
	}

	c := screen.cells[[2]int{3, 1}]
	if c.r != halfBlock {
		t.Errorf("Expected half block, got %q", c.r)
	}
	want := tcell.StyleDefault.Foreground(toTcell(red)).Background(toTcell(RgbBackground))
	if c.style != want {
		t.Errorf("Expected red over background style, got %v", c.style)
	}
}

func TestTerminalSurface_Resize(t *testing.T) {
	screen := newMockScreen(4, 2)
	s := NewTerminalSurface(screen, 10, 10)
	if _, ok := s.Sample(5, 0); ok {
		t.Error("Expected sample outside 4 columns to be out of range")
	}

	screen.width, screen.height = 8, 4
	s.Resize()
	expectSample(t, s, 7, 7, RgbBackground)
}

func TestTerminalSurface_ZeroSize(t *testing.T) {
	s := NewTerminalSurface(newMockScreen(0, 0), 10, 10)
	sheet := solidSheet(2, 2, red)
	s.Clear(core.NewRect(0, 0, 10, 10))
	s.DrawSprite(sheet, sheet.FrameRect(0), core.NewRect(0, 0, 2, 2))
	s.DrawOutline(core.NewRect(0, 0, 2, 2))
	s.Present()
}
