package component

// MotionKind discriminates the closed set of movement behaviors
type MotionKind uint8

const (
	MotionNone MotionKind = iota
	MotionShake
	MotionLeftSine
	MotionLissajous
	MotionWander
)

// MotionKinds lists the spawnable kinds in registry construction order
var MotionKinds = [...]MotionKind{MotionShake, MotionLeftSine, MotionLissajous, MotionWander}

var motionKindNames = [...]string{
	MotionNone:      "none",
	MotionShake:     "shake",
	MotionLeftSine:  "left_sine",
	MotionLissajous: "lissajous",
	MotionWander:    "wander",
}

func (k MotionKind) String() string {
	if int(k) < len(motionKindNames) {
		return motionKindNames[k]
	}
	return "unknown"
}

// ParseMotionKind resolves a catalog/config name, false if unknown
func ParseMotionKind(name string) (MotionKind, bool) {
	for i, n := range motionKindNames {
		if n == name && MotionKind(i) != MotionNone {
			return MotionKind(i), true
		}
	}
	return MotionNone, false
}

// ShakeMotion re-samples its heading every tick, producing jitter
// Speed is signed and fixed at construction
type ShakeMotion struct {
	Speed     float64
	Direction float64 // Degrees, overwritten every tick
}

// SineMotion drifts along a fixed heading while oscillating vertically
type SineMotion struct {
	Speed        float64
	Heading      float64 // Degrees
	Amplitude    float64
	Angle        float64 // Degrees, accumulates unbounded
	AngularSpeed float64
}

// LissajousMotion recomputes position from Angle each tick, spanning the full canvas
type LissajousMotion struct {
	Angle        float64
	AngularSpeed float64
	RatioX       float64
	RatioY       float64
}

// WanderMotion eases toward a target re-picked every Interval ticks
type WanderMotion struct {
	Interval int
	TargetX  float64
	TargetY  float64
}
