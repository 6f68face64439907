package component

// AnimationComponent tracks the sprite-sheet frame of an entity
type AnimationComponent struct {
	Frame     int // Current frame index, within [0, LastFrame]
	LastFrame int // Highest usable frame index of the sheet
	Speed     int // Ticks per advance, multiplied by parameter.TickSpeed
}

// Advance steps the frame, wrapping to 0 after LastFrame
func (a *AnimationComponent) Advance() {
	if a.Frame >= a.LastFrame {
		a.Frame = 0
		return
	}
	a.Frame++
}
