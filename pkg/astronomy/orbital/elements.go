// Package orbital computes a planet's position on a bound heliocentric orbit:
// mean anomaly from time, eccentric anomaly via Kepler's equation, then true
// anomaly and distance from the Sun.
//
// References:
//
//	Murray & Dermott, Solar System Dynamics (MD)
//	Goosse et al., Introduction to Climate Dynamics and Climate Modeling
package orbital

import (
	"math"

	astromath "github.com/solweaver/heliorbit/pkg/astronomy/math"
)

// OrbitalElements describes a bound Keplerian orbit in the ecliptic plane of
// the orbiting body. Lengths are in AU, times in days, angles in radians.
//
// Epoch is the time of perihelion passage: the mean anomaly is zero at
// t = Epoch, so the body sits at perihelion there (MD's τ convention).
type OrbitalElements struct {
	SemiMajorAxis       float64 // a - semi-major axis (AU)
	Eccentricity        float64 // e - eccentricity, 0 <= e < 1
	Epoch               float64 // τ - time of perihelion passage (days)
	Period              float64 // T - orbital period (days)
	LongitudePerihelion float64 // ϖ - longitude of perihelion (radians), for true longitude
}

// Validate reports the first orbital element outside the bound-orbit domain.
func (oe OrbitalElements) Validate() error {
	if oe.SemiMajorAxis <= 0 || math.IsNaN(oe.SemiMajorAxis) {
		return &InvalidOrbitError{Field: "semi-major axis", Value: oe.SemiMajorAxis}
	}
	if oe.Eccentricity < 0 || oe.Eccentricity >= 1 || math.IsNaN(oe.Eccentricity) {
		return &InvalidOrbitError{Field: "eccentricity", Value: oe.Eccentricity}
	}
	if oe.Period <= 0 || math.IsNaN(oe.Period) {
		return &InvalidOrbitError{Field: "period", Value: oe.Period}
	}
	return nil
}

// MeanMotion returns the mean motion n = 2π/T in radians per day.
func (oe OrbitalElements) MeanMotion() float64 {
	return astromath.TwoPi / oe.Period
}

// MeanAnomalyAt returns the mean anomaly M = n·(t − τ) at time t,
// normalized to [0, 2π). MD (2.39).
func (oe OrbitalElements) MeanAnomalyAt(t float64) float64 {
	return astromath.NormalizeAngle(oe.MeanMotion() * (t - oe.Epoch))
}

// Perihelion returns the perihelion distance a·(1 − e).
func (oe OrbitalElements) Perihelion() float64 {
	return oe.SemiMajorAxis * (1 - oe.Eccentricity)
}

// Aphelion returns the aphelion distance a·(1 + e).
func (oe OrbitalElements) Aphelion() float64 {
	return oe.SemiMajorAxis * (1 + oe.Eccentricity)
}

// MeanDistance returns the time-averaged distance from the focus, a·√(1−e²).
// Goosse et al. (2.16).
func (oe OrbitalElements) MeanDistance() float64 {
	return oe.SemiMajorAxis * math.Sqrt(1-oe.Eccentricity*oe.Eccentricity)
}

// RadiusAtTrueAnomaly returns the distance from the focus at true anomaly nu
// using the conic-section form r = a·(1−e²)/(1 + e·cos ν). Goosse et al.
// (2.15), MD (2.19).
func (oe OrbitalElements) RadiusAtTrueAnomaly(nu float64) (float64, error) {
	if err := oe.Validate(); err != nil {
		return 0, err
	}
	return oe.SemiMajorAxis * (1 - oe.Eccentricity*oe.Eccentricity) /
		(1 + oe.Eccentricity*math.Cos(nu)), nil
}

// TrueLongitude converts a true anomaly to the true longitude λ = ν + ϖ,
// normalized to [0, 2π). Goosse et al. (2.19).
func (oe OrbitalElements) TrueLongitude(nu float64) float64 {
	return astromath.NormalizeAngle(nu + oe.LongitudePerihelion)
}

// TrueAnomalyFromLongitude inverts TrueLongitude.
func (oe OrbitalElements) TrueAnomalyFromLongitude(lambda float64) float64 {
	return astromath.NormalizeAngle(lambda - oe.LongitudePerihelion)
}
