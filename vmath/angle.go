package vmath

import "math"

// --- Degree trigonometry ---

// Angles grow without bound over a session; every evaluation reduces modulo 360 first

// NormalizeDeg reduces an angle to [0, 360)
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// SinDeg returns sine of an angle given in degrees
func SinDeg(deg float64) float64 {
	return math.Sin(DegToRad(NormalizeDeg(deg)))
}

// CosDeg returns cosine of an angle given in degrees
func CosDeg(deg float64) float64 {
	return math.Cos(DegToRad(NormalizeDeg(deg)))
}

// Distance returns euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
