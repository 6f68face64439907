package sprite

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/enemy-drift/component"
	"github.com/lixenwraith/enemy-drift/core"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := ParseCatalog([]byte(smallCatalog))
	if err != nil {
		t.Fatalf("ParseCatalog failed: %v", err)
	}
	return c
}

func writePNG(t *testing.T, path string, w, h int, fill color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestGenerate_FrameCount(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	for _, def := range c.Definitions() {
		s := Generate(def)
		if s.Frames != def.Frames() {
			t.Errorf("%s: expected %d frames, got %d", def.Name, def.Frames(), s.Frames)
		}
		b := s.Image.Bounds()
		if b.Dx() != def.SpriteWidth*def.Frames() || b.Dy() != def.SpriteHeight {
			t.Errorf("%s: unexpected image size %dx%d", def.Name, b.Dx(), b.Dy())
		}

		// Frame centers carry some paint
		opaque := false
		for f := 0; f < s.Frames && !opaque; f++ {
			cx, cy := f*s.FrameWidth+s.FrameWidth/2, s.FrameHeight/2
			for dx := -2; dx <= 2 && !opaque; dx++ {
				opaque = !IsTransparent(s.At(cx+dx, cy))
			}
		}
		if !opaque {
			t.Errorf("%s: expected opaque pixels near frame centers", def.Name)
		}
	}
}

func TestSheet_FrameRect(t *testing.T) {
	s := &Sheet{FrameWidth: 10, FrameHeight: 7, Frames: 4}
	if got := s.FrameRect(3); got != core.NewRect(30, 0, 10, 7) {
		t.Errorf("Expected {30 0 10 7}, got %+v", got)
	}
}

func TestNewSheet_DerivesFrames(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 35, 6))
	s, err := NewSheet("x", img, 8, 6)
	if err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	if s.Frames != 4 {
		t.Errorf("Expected 4 whole frames, got %d", s.Frames)
	}

	if _, err := NewSheet("x", img, 8, 7); !errors.Is(err, ErrSheetMisshaped) {
		t.Errorf("Expected ErrSheetMisshaped, got %v", err)
	}
	if _, err := NewSheet("x", img, 0, 6); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
}

func TestSheet_AtOutside(t *testing.T) {
	s := &Sheet{Image: image.NewRGBA(image.Rect(0, 0, 4, 4)), FrameWidth: 4, FrameHeight: 4, Frames: 1}
	if !IsTransparent(s.At(-1, 0)) || !IsTransparent(s.At(4, 0)) {
		t.Error("Expected transparent samples outside the image")
	}
}

func TestToRGBA(t *testing.T) {
	half := color.RGBA{R: 50, G: 25, B: 0, A: 128}
	got := ToRGBA(half)
	if got.A != 128 || got.R < 98 || got.R > 100 {
		t.Errorf("Expected un-premultiplied ~{99 49 0 128}, got %+v", got)
	}
	if ToRGBA(color.Transparent) != (color.RGBA{}) {
		t.Error("Expected zero color for transparent input")
	}
}

func TestLoadLibrary_FallsBackToProcedural(t *testing.T) {
	c := mustCatalog(t)
	lib, results, err := LoadLibrary(c, t.TempDir())
	if err != nil {
		t.Fatalf("LoadLibrary failed: %v", err)
	}
	if len(results) != len(component.MotionKinds) {
		t.Fatalf("Expected %d results, got %d", len(component.MotionKinds), len(results))
	}
	for _, r := range results {
		if r.Source != SourceProcedural {
			t.Errorf("%s: expected procedural, got %s", r.Kind, r.Source)
		}
		if lib.Get(r.Kind) == nil {
			t.Errorf("%s: expected a sheet", r.Kind)
		}
	}
}

func TestLoadLibrary_EmptyDir(t *testing.T) {
	c := mustCatalog(t)
	lib, results, err := LoadLibrary(c, "")
	if err != nil {
		t.Fatalf("LoadLibrary failed: %v", err)
	}
	for _, r := range results {
		if r.Path != "" || r.Source != SourceProcedural {
			t.Errorf("%s: expected procedural without path, got %+v", r.Kind, r)
		}
	}
	if s := lib.Get(component.MotionWander); s == nil || s.Frames != 4 {
		t.Errorf("Expected generated 4-frame wander sheet, got %+v", s)
	}
}

func TestLoadLibrary_ReadsPNG(t *testing.T) {
	c := mustCatalog(t)
	dir := t.TempDir()
	red := color.RGBA{R: 255, A: 255}
	writePNG(t, filepath.Join(dir, "a.png"), 8*3, 6, red)

	lib, results, err := LoadLibrary(c, dir)
	if err != nil {
		t.Fatalf("LoadLibrary failed: %v", err)
	}
	if results[0].Kind != component.MotionShake || results[0].Source != SourceFile {
		t.Errorf("Expected shake loaded from file, got %+v", results[0])
	}
	s := lib.Get(component.MotionShake)
	if s.Frames != 3 {
		t.Errorf("Expected 3 frames, got %d", s.Frames)
	}
	if got := ToRGBA(s.At(20, 3)); got != red {
		t.Errorf("Expected red pixel, got %+v", got)
	}
}

func TestLoadLibrary_SheetTooSmall(t *testing.T) {
	c := mustCatalog(t)
	dir := t.TempDir()
	// Wander needs last_frame+1 = 4 frames
	writePNG(t, filepath.Join(dir, "d.png"), 8*3, 6, color.RGBA{G: 255, A: 255})

	_, _, err := LoadLibrary(c, dir)
	if !errors.Is(err, ErrSheetTooSmall) {
		t.Errorf("Expected ErrSheetTooSmall, got %v", err)
	}
}

func TestLoadLibrary_CorruptPNG(t *testing.T) {
	c := mustCatalog(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.png"), []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadLibrary(c, dir); err == nil {
		t.Error("Expected decode error")
	}
}

func TestSourceString(t *testing.T) {
	if SourceFile.String() != "file" || SourceProcedural.String() != "procedural" {
		t.Errorf("Unexpected source names %q %q", SourceFile, SourceProcedural)
	}
}
