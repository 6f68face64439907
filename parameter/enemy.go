package parameter

// Population
const (
	// EnemyCountDefault is the number of entities spawned per motion kind
	EnemyCountDefault = 5
)

// Animation
const (
	// AnimationSpeedMin is the lowest per-instance tick divisor for frame advance
	AnimationSpeedMin = 1

	// AnimationSpeedMax is the highest per-instance tick divisor (inclusive)
	AnimationSpeedMax = 4
)

// Shake
const (
	// ShakeDirectionRange is the exclusive upper bound of the re-sampled heading (degrees)
	ShakeDirectionRange = 360.0
)

// Left sine sweep
const (
	// SineHeading is the fixed drift heading (degrees), 180 = leftward
	SineHeading = 180.0

	// SineAmplitudeMax is the exclusive upper bound of the vertical oscillation amplitude
	SineAmplitudeMax = 10.0

	// SineAngularSpeedMax is the exclusive upper bound of angle accumulation per tick (degrees)
	SineAngularSpeedMax = 10.0
)

// Lissajous
const (
	// LissajousAngularSpeedMin is the inclusive lower bound of angle accumulation per tick
	LissajousAngularSpeedMin = 1.0

	// LissajousAngularSpeedMax is the exclusive upper bound of angle accumulation per tick
	LissajousAngularSpeedMax = 5.0

	// LissajousRatioX and LissajousRatioY give the figure-eight frequency ratio
	LissajousRatioX = 1.0
	LissajousRatioY = 2.0
)

// Wander
const (
	// WanderIntervalMin is the inclusive lower bound of ticks between retargets
	WanderIntervalMin = 50

	// WanderIntervalMax is the exclusive upper bound of ticks between retargets
	WanderIntervalMax = 250

	// WanderEaseDivisor is the fraction denominator of remaining distance covered per tick
	WanderEaseDivisor = 20.0
)
