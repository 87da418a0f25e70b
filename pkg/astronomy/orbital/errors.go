package orbital

import "fmt"

// InvalidOrbitError is returned when orbital elements lie outside the domain
// of a bound elliptical orbit (e ∉ [0,1), a ≤ 0, T ≤ 0). It is not retryable.
type InvalidOrbitError struct {
	Field string  // which element is out of domain
	Value float64 // the offending value
}

// Error returns the error message for InvalidOrbitError.
func (e *InvalidOrbitError) Error() string {
	return fmt.Sprintf("orbital: invalid orbit: %s = %g is outside the bound-orbit domain", e.Field, e.Value)
}

// ConvergenceError is returned when the Newton-Raphson iteration for Kepler's
// equation exhausts its iteration budget. LastEstimate is the best available
// eccentric anomaly; Residual is |E − e·sin(E) − M| at that estimate. Callers
// may accept the best-effort value or treat the error as fatal.
type ConvergenceError struct {
	MeanAnomaly  float64
	Eccentricity float64
	LastEstimate float64
	Residual     float64
	Iterations   int
}

// Error returns the error message for ConvergenceError.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("orbital: Kepler solver did not converge after %d iterations (M=%.9f, e=%.6f, last E=%.9f, residual=%.3e)",
		e.Iterations, e.MeanAnomaly, e.Eccentricity, e.LastEstimate, e.Residual)
}
