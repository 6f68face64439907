package engine

import (
	"github.com/lixenwraith/enemy-drift/component"
	"github.com/lixenwraith/enemy-drift/core"
	"github.com/lixenwraith/enemy-drift/parameter"
	"github.com/lixenwraith/enemy-drift/vmath"
)

// computeMotion selects the step function for the entity kind and returns the next position
// Unknown kinds hold position
func (e *Entity) computeMotion(frame uint64, canvas core.Rect, rng *vmath.FastRand) (x, y float64) {
	switch e.Kind {
	case component.MotionShake:
		return stepShake(&e.Shake, e.Body, rng)
	case component.MotionLeftSine:
		return stepLeftSine(&e.Sine, e.Body)
	case component.MotionLissajous:
		return stepLissajous(&e.Lissajous, e.Body, canvas)
	case component.MotionWander:
		return stepWander(&e.Wander, e.Body, canvas, frame, rng)
	default:
		return e.Body.X, e.Body.Y
	}
}

// stepShake re-samples the heading every tick and moves by the fixed signed speed
func stepShake(m *component.ShakeMotion, b component.BodyComponent, rng *vmath.FastRand) (float64, float64) {
	m.Direction = rng.Range(0, parameter.ShakeDirectionRange)
	x := b.X + m.Speed*vmath.CosDeg(m.Direction)
	y := b.Y - m.Speed*vmath.SinDeg(m.Direction)
	return x, y
}

// stepLeftSine drifts along the heading and oscillates y by the accumulated angle
func stepLeftSine(m *component.SineMotion, b component.BodyComponent) (float64, float64) {
	x := b.X + m.Speed*vmath.CosDeg(m.Heading)
	y := b.Y - m.Amplitude*vmath.SinDeg(m.Angle)
	m.Angle += m.AngularSpeed
	return x, y
}

// stepLissajous recomputes position from the angle alone; result stays inside
// [0, W-w] x [0, H-h] for any angle
func stepLissajous(m *component.LissajousMotion, b component.BodyComponent, canvas core.Rect) (float64, float64) {
	a := vmath.NormalizeDeg(m.Angle)
	x := ((canvas.Width - b.Width) / 2) * (vmath.SinDeg(m.RatioX*a) + 1)
	y := ((canvas.Height - b.Height) / 2) * (vmath.SinDeg(m.RatioY*a) + 1)
	m.Angle += m.AngularSpeed
	return x, y
}

// stepWander picks a new in-canvas target every Interval ticks and eases a fixed
// fraction of the remaining distance toward it
func stepWander(m *component.WanderMotion, b component.BodyComponent, canvas core.Rect, frame uint64, rng *vmath.FastRand) (float64, float64) {
	if m.Interval > 0 && frame%uint64(m.Interval) == 0 {
		m.TargetX = rng.Range(0, max(0, canvas.Width-b.Width))
		m.TargetY = rng.Range(0, max(0, canvas.Height-b.Height))
	}
	x := b.X - (b.X-m.TargetX)/parameter.WanderEaseDivisor
	y := b.Y - (b.Y-m.TargetY)/parameter.WanderEaseDivisor
	return x, y
}
