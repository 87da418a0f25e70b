package solar

import "math"

// Declination returns the solar declination for a planet with the given
// axial obliquity when its orbital true longitude is lambda:
// δ = asin(sin ε · sin λ). Angles in radians; λ is measured from the
// ascending equinox, so λ = π/2 is the northern summer solstice.
func Declination(obliquity, trueLongitude float64) float64 {
	return math.Asin(math.Sin(obliquity) * math.Sin(trueLongitude))
}

// SunsetHourAngle returns the hour angle h_s at which the Sun crosses the
// horizon: cos h_s = −tan φ · tan δ, with the argument clamped to [−1, 1].
// Returns 0 in polar night (the Sun never rises) and π in polar day.
func SunsetHourAngle(latitude, declination float64) float64 {
	x := -math.Tan(latitude) * math.Tan(declination)
	if x >= 1 {
		return 0
	}
	if x <= -1 {
		return math.Pi
	}
	return math.Acos(x)
}
