package parameter

import "time"

// Loop Timing
const (
	// FrameUpdateInterval is the display refresh interval for the ticker scheduler (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickSpeed multiplies each entity's animation speed in the frame-advance check
	// A value of 1 evaluates the modulo check every tick
	TickSpeed = 1

	// HeadlessTicks is the default tick budget when running without a display
	HeadlessTicks = 600
)

// Canvas
const (
	// CanvasWidth is the default drawing surface width in pixels
	CanvasWidth = 500

	// CanvasHeight is the default drawing surface height in pixels
	CanvasHeight = 600

	// SpriteScale divides source sprite pixel size into render size
	SpriteScale = 2
)
