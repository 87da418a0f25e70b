package math

import "math"

// TwoPi is one full turn in radians.
const TwoPi = 2 * math.Pi

// NormalizeAngle reduces an angle to the canonical range [0, 2π).
func NormalizeAngle(angle float64) float64 {
	wrapped := math.Mod(angle, TwoPi)
	if wrapped < 0 {
		wrapped += TwoPi
	}
	return wrapped
}

// ClipAngle shifts an angle by whole turns until it lies in [min, min+2π).
// Useful for longitudes measured from a reference other than zero.
func ClipAngle(angle, min float64) float64 {
	return min + NormalizeAngle(angle-min)
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
