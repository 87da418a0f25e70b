// Package solar models solar irradiance at a point on a planet's surface
// from the orbital geometry solved by pkg/astronomy/orbital.
//
// The model follows Appelbaum & Flood, "Solar Radiation on Mars", NASA Lewis
// Research Center: an inverse-square beam term scaled by the solar constant,
// and a zenith-angle cosine for the surface projection.
package solar

import "math"

// Model holds the solar constant and the reference distance it is defined at.
type Model struct {
	Constant    float64 // S - irradiance at RefDistance (W/m²)
	RefDistance float64 // r₀ - reference distance (AU)
}

// DefaultModel returns the Appelbaum & Flood solar constant, 1371 W/m² at
// the mean Sun-Earth distance of 1 AU.
func DefaultModel() Model {
	return Model{Constant: 1371, RefDistance: 1}
}

// BeamIrradiance returns the direct beam irradiance at distance r from the
// Sun: S·(r₀/r)². Appelbaum & Flood equation (1).
func (m Model) BeamIrradiance(r float64) (float64, error) {
	if r <= 0 || math.IsNaN(r) {
		return 0, &InvalidGeometryError{Quantity: "distance from Sun", Value: r}
	}
	ratio := m.RefDistance / r
	return m.Constant * ratio * ratio, nil
}

// CosZenithAngle returns the cosine of the solar zenith angle for a site at
// the given latitude, with the Sun at the given declination and hour angle.
// All angles in radians. Negative values mean the Sun is below the horizon.
func CosZenithAngle(latitude, declination, hourAngle float64) float64 {
	return math.Sin(latitude)*math.Sin(declination) +
		math.Cos(latitude)*math.Cos(declination)*math.Cos(hourAngle)
}

// InstantaneousFlux returns the direct flux on a horizontal surface at
// distance r from the Sun. Below the horizon the flux is zero. Appelbaum &
// Flood equations (5) and (6).
func (m Model) InstantaneousFlux(r, latitude, declination, hourAngle float64) (float64, error) {
	beam, err := m.BeamIrradiance(r)
	if err != nil {
		return 0, err
	}
	return beam * math.Max(0, CosZenithAngle(latitude, declination, hourAngle)), nil
}
