package solar

import "fmt"

// InvalidGeometryError is returned when the irradiance model is handed
// geometry outside its domain, e.g. a non-positive Sun distance. The Kepler
// solver never produces such values, but callers may supply geometry from
// elsewhere.
type InvalidGeometryError struct {
	Quantity string
	Value    float64
}

// Error returns the error message for InvalidGeometryError.
func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("solar: invalid geometry: %s = %g", e.Quantity, e.Value)
}
