package orbital

import (
	"math"

	astromath "github.com/solweaver/heliorbit/pkg/astronomy/math"
)

const (
	// DefaultTolerance is the Newton-Raphson convergence threshold in radians.
	DefaultTolerance = 1e-10
	// DefaultMaxIterations bounds the Newton-Raphson loop.
	DefaultMaxIterations = 50

	// startingValueK tunes the initial guess E₀ = M + copysign(k·e, sin M).
	// MD (2.64).
	startingValueK = 0.85
)

// AnomalyState holds the three anomalies at a single instant, each
// normalized to [0, 2π). Computed fresh per query, never persisted.
type AnomalyState struct {
	Mean      float64 // M
	Eccentric float64 // E
	True      float64 // ν
}

// Position is the solved orbital position at a single instant.
type Position struct {
	Radius        float64 // r - distance from the Sun (AU)
	TrueAnomaly   float64 // ν, in [0, 2π)
	TrueLongitude float64 // λ = ν + ϖ, in [0, 2π)
}

// SolveEccentricAnomaly solves Kepler's equation M = E − e·sin(E) for E by
// Newton-Raphson iteration, MD (2.52). M must be in [0, 2π); the result is
// normalized to the same range.
//
// The intermediate iterate is deliberately not wrapped: wrapping mid-iteration
// breaks Newton convergence near the 0/2π boundary.
func SolveEccentricAnomaly(M, e, tolerance float64, maxIterations int) (float64, error) {
	if e < 0 || e >= 1 || math.IsNaN(e) {
		return 0, &InvalidOrbitError{Field: "eccentricity", Value: e}
	}
	if e == 0 {
		return astromath.NormalizeAngle(M), nil
	}

	E := M + math.Copysign(startingValueK*e, math.Sin(M))
	for i := 0; i < maxIterations; i++ {
		f := E - e*math.Sin(E) - M
		fp := 1 - e*math.Cos(E)
		delta := f / fp
		E -= delta

		if math.Abs(delta) < tolerance {
			return astromath.NormalizeAngle(E), nil
		}
	}

	return astromath.NormalizeAngle(E), &ConvergenceError{
		MeanAnomaly:  M,
		Eccentricity: e,
		LastEstimate: astromath.NormalizeAngle(E),
		Residual:     math.Abs(E - e*math.Sin(E) - M),
		Iterations:   maxIterations,
	}
}

// TrueAnomalyAndRadius converts an eccentric anomaly to the true anomaly and
// the distance from the focus. MD (2.46) in half-angle atan2 form, which is
// well behaved in all four quadrants, and r = a·(1 − e·cos E).
func TrueAnomalyAndRadius(E, e, a float64) (nu, r float64) {
	nu = 2 * math.Atan2(
		math.Sqrt(1+e)*math.Sin(E/2),
		math.Sqrt(1-e)*math.Cos(E/2),
	)
	nu = astromath.NormalizeAngle(nu)
	r = a * (1 - e*math.Cos(E))
	return nu, r
}

// EccentricAnomalyFromTrue inverts TrueAnomalyAndRadius' angle relation:
// tan(E/2) = √((1−e)/(1+e))·tan(ν/2).
func EccentricAnomalyFromTrue(nu, e float64) (float64, error) {
	if e < 0 || e >= 1 || math.IsNaN(e) {
		return 0, &InvalidOrbitError{Field: "eccentricity", Value: e}
	}
	E := 2 * math.Atan2(
		math.Sqrt(1-e)*math.Sin(nu/2),
		math.Sqrt(1+e)*math.Cos(nu/2),
	)
	return astromath.NormalizeAngle(E), nil
}

// AnomaliesAt computes the mean, eccentric and true anomalies at time t
// with the default solver settings.
func (oe OrbitalElements) AnomaliesAt(t float64) (AnomalyState, error) {
	if err := oe.Validate(); err != nil {
		return AnomalyState{}, err
	}

	M := oe.MeanAnomalyAt(t)
	E, err := SolveEccentricAnomaly(M, oe.Eccentricity, DefaultTolerance, DefaultMaxIterations)
	if err != nil {
		return AnomalyState{}, err
	}
	nu, _ := TrueAnomalyAndRadius(E, oe.Eccentricity, oe.SemiMajorAxis)

	return AnomalyState{Mean: M, Eccentric: E, True: nu}, nil
}

// PositionAt returns the orbital position at time t. This is the entry point
// most callers use: it validates the elements, solves Kepler's equation and
// applies the anomaly transform. The result is a pure function of the inputs.
func (oe OrbitalElements) PositionAt(t float64) (Position, error) {
	if err := oe.Validate(); err != nil {
		return Position{}, err
	}

	M := oe.MeanAnomalyAt(t)
	E, err := SolveEccentricAnomaly(M, oe.Eccentricity, DefaultTolerance, DefaultMaxIterations)
	if err != nil {
		return Position{}, err
	}
	nu, r := TrueAnomalyAndRadius(E, oe.Eccentricity, oe.SemiMajorAxis)

	return Position{
		Radius:        r,
		TrueAnomaly:   nu,
		TrueLongitude: oe.TrueLongitude(nu),
	}, nil
}
