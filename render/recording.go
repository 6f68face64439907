package render

import (
	"sync"

	"github.com/lixenwraith/enemy-drift/core"
	"github.com/lixenwraith/enemy-drift/sprite"
)

// Op identifies a recorded surface call
type Op uint8

const (
	OpClear Op = iota
	OpSprite
	OpOutline
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpSprite:
		return "sprite"
	case OpOutline:
		return "outline"
	}
	return "unknown"
}

// DrawCall is one recorded surface operation
type DrawCall struct {
	Op    Op
	Sheet *sprite.Sheet
	Src   core.Rect
	Dst   core.Rect
}

// RecordingSurface stores draw calls of the current frame without rasterizing
// Used by headless runs and tests
type RecordingSurface struct {
	mu       sync.Mutex
	calls    []DrawCall
	presents int
	sprites  uint64
}

// NewRecordingSurface creates an empty recorder
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{calls: make([]DrawCall, 0, 64)}
}

// Clear starts a new frame when the region is recorded
func (r *RecordingSurface) Clear(region core.Rect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = r.calls[:0]
	r.calls = append(r.calls, DrawCall{Op: OpClear, Dst: region})
}

func (r *RecordingSurface) DrawSprite(sheet *sprite.Sheet, src, dst core.Rect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, DrawCall{Op: OpSprite, Sheet: sheet, Src: src, Dst: dst})
	r.sprites++
}

func (r *RecordingSurface) DrawOutline(rect core.Rect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, DrawCall{Op: OpOutline, Dst: rect})
}

func (r *RecordingSurface) Present() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presents++
}

// Calls returns a copy of the calls recorded since the last Clear
func (r *RecordingSurface) Calls() []DrawCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]DrawCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// Presents returns the number of presented frames
func (r *RecordingSurface) Presents() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.presents
}

// SpriteCount returns total sprite draws across all frames
func (r *RecordingSurface) SpriteCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sprites
}
