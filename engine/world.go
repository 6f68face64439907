package engine

import (
	"fmt"

	"github.com/lixenwraith/enemy-drift/component"
	"github.com/lixenwraith/enemy-drift/core"
	"github.com/lixenwraith/enemy-drift/render"
	"github.com/lixenwraith/enemy-drift/sprite"
	"github.com/lixenwraith/enemy-drift/vmath"
)

// Population is the number of entities to spawn per motion kind
type Population map[component.MotionKind]int

// UniformPopulation spawns n entities of every kind
func UniformPopulation(n int) Population {
	p := make(Population, len(component.MotionKinds))
	for _, kind := range component.MotionKinds {
		p[kind] = n
	}
	return p
}

// Total returns the entity count across kinds
func (p Population) Total() int {
	n := 0
	for _, c := range p {
		n += c
	}
	return n
}

// World owns the ordered entity set and the frame counter
// Entity order is insertion order and defines draw layering
type World struct {
	canvas   core.Rect
	catalog  *sprite.Catalog
	library  *sprite.Library
	rng      *vmath.FastRand
	entities []*Entity
	frame    uint64
}

// NewWorld spawns pop entities per kind in MotionKinds order at uniformly random
// canvas positions
func NewWorld(canvas core.Rect, catalog *sprite.Catalog, library *sprite.Library, pop Population, rng *vmath.FastRand) (*World, error) {
	w := &World{
		canvas:   canvas,
		catalog:  catalog,
		library:  library,
		rng:      rng,
		entities: make([]*Entity, 0, pop.Total()),
	}

	for _, kind := range component.MotionKinds {
		for i := 0; i < pop[kind]; i++ {
			x := rng.Float64() * canvas.Width
			y := rng.Float64() * canvas.Height
			if _, err := w.Spawn(kind, x, y); err != nil {
				return nil, err
			}
		}
	}

	return w, nil
}

// Spawn appends one entity of kind at (x, y)
func (w *World) Spawn(kind component.MotionKind, x, y float64) (*Entity, error) {
	def, ok := w.catalog.Get(kind)
	if !ok {
		return nil, fmt.Errorf("spawn %s: %w", kind, sprite.ErrUnknownKind)
	}
	sheet := w.library.Get(kind)
	if sheet == nil {
		return nil, fmt.Errorf("spawn %s: no sprite sheet", kind)
	}

	e := NewEntity(def, sheet, x, y, w.rng)
	w.entities = append(w.entities, e)
	return e, nil
}

// Entities returns entities in insertion order; callers must not reorder the slice
func (w *World) Entities() []*Entity {
	return w.entities
}

// Len returns the entity count
func (w *World) Len() int {
	return len(w.entities)
}

// Frame returns the number of completed ticks
func (w *World) Frame() uint64 {
	return w.frame
}

// Canvas returns the fixed canvas rectangle
func (w *World) Canvas() core.Rect {
	return w.canvas
}

// Tick runs one simulation step: clear, update and draw every entity in order,
// then advance the frame counter
// All entities read the same frame value; the counter is written after the last read
func (w *World) Tick(s render.Surface, debug bool) {
	s.Clear(w.canvas)
	for _, e := range w.entities {
		e.Update(w.frame, w.canvas, w.rng)
		e.Draw(s, debug)
	}
	w.frame++
}

// Step advances the simulation without drawing
func (w *World) Step() {
	for _, e := range w.entities {
		e.Update(w.frame, w.canvas, w.rng)
	}
	w.frame++
}
