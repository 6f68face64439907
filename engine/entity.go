package engine

import (
	"github.com/lixenwraith/enemy-drift/component"
	"github.com/lixenwraith/enemy-drift/core"
	"github.com/lixenwraith/enemy-drift/parameter"
	"github.com/lixenwraith/enemy-drift/render"
	"github.com/lixenwraith/enemy-drift/sprite"
	"github.com/lixenwraith/enemy-drift/vmath"
)

// Entity is one animated sprite; Kind selects which motion struct is live
type Entity struct {
	Kind component.MotionKind
	Name string

	Body component.BodyComponent
	Anim component.AnimationComponent

	Shake     component.ShakeMotion
	Sine      component.SineMotion
	Lissajous component.LissajousMotion
	Wander    component.WanderMotion

	Sheet *sprite.Sheet
}

// NewEntity builds an entity of def's kind at (x, y), drawing its randomized
// animation speed and motion parameters from rng
func NewEntity(def *sprite.Definition, sheet *sprite.Sheet, x, y float64, rng *vmath.FastRand) *Entity {
	e := &Entity{
		Kind: def.Kind,
		Name: def.Name,
		Body: component.BodyComponent{
			X:      x,
			Y:      y,
			Width:  float64(def.SpriteWidth) / parameter.SpriteScale,
			Height: float64(def.SpriteHeight) / parameter.SpriteScale,
		},
		Anim: component.AnimationComponent{
			LastFrame: def.LastFrame,
			Speed:     rng.IntRange(parameter.AnimationSpeedMin, parameter.AnimationSpeedMax+1),
		},
		Sheet: sheet,
	}

	switch def.Kind {
	case component.MotionShake:
		e.Shake = component.ShakeMotion{
			Speed:     rng.Range(-1, 1) * def.MaxSpeed,
			Direction: rng.Range(0, parameter.ShakeDirectionRange),
		}
	case component.MotionLeftSine:
		e.Sine = component.SineMotion{
			Speed:        rng.Float64() * def.MaxSpeed,
			Heading:      parameter.SineHeading,
			Amplitude:    rng.Range(0, parameter.SineAmplitudeMax),
			AngularSpeed: rng.Range(0, parameter.SineAngularSpeedMax),
		}
	case component.MotionLissajous:
		e.Lissajous = component.LissajousMotion{
			AngularSpeed: rng.Range(parameter.LissajousAngularSpeedMin, parameter.LissajousAngularSpeedMax),
			RatioX:       parameter.LissajousRatioX,
			RatioY:       parameter.LissajousRatioY,
		}
	case component.MotionWander:
		e.Wander = component.WanderMotion{
			Interval: rng.IntRange(parameter.WanderIntervalMin, parameter.WanderIntervalMax),
			TargetX:  x,
			TargetY:  y,
		}
	}

	return e
}

// Update runs one tick: motion step, animation step, then edge wrap
func (e *Entity) Update(frame uint64, canvas core.Rect, rng *vmath.FastRand) {
	e.Body.X, e.Body.Y = e.computeMotion(frame, canvas, rng)
	e.animate(frame)
	e.Body.Wrap(canvas.Width, canvas.Height)
}

// animate advances the sprite frame on ticks divisible by TickSpeed*Speed
func (e *Entity) animate(frame uint64) {
	period := uint64(parameter.TickSpeed * e.Anim.Speed)
	if period == 0 {
		period = 1
	}
	if frame%period == 0 {
		e.Anim.Advance()
	}
}

// Draw paints the current frame at the entity bounds, preceded by an outline when debug is set
func (e *Entity) Draw(s render.Surface, debug bool) {
	dst := e.Body.Bounds()
	if debug {
		s.DrawOutline(dst)
	}
	if e.Sheet == nil {
		return
	}
	s.DrawSprite(e.Sheet, e.Sheet.FrameRect(e.Anim.Frame), dst)
}
