package solar

import (
	"errors"
	"math"
	"testing"

	astromath "github.com/solweaver/heliorbit/pkg/astronomy/math"
)

func TestBeamIrradiance_InverseSquare(t *testing.T) {
	m := DefaultModel()

	at1AU, err := m.BeamIrradiance(1)
	if err != nil {
		t.Fatalf("BeamIrradiance(1): %v", err)
	}
	if at1AU != m.Constant {
		t.Errorf("beam at reference distance = %v, want solar constant %v", at1AU, m.Constant)
	}

	at2AU, err := m.BeamIrradiance(2)
	if err != nil {
		t.Fatalf("BeamIrradiance(2): %v", err)
	}
	if math.Abs(at2AU-m.Constant/4) > 1e-12 {
		t.Errorf("beam at 2 AU = %v, want S/4 = %v", at2AU, m.Constant/4)
	}

	// Mars mean distance, Appelbaum & Flood give ≈ 590 W/m².
	atMars, err := m.BeamIrradiance(1.5236915)
	if err != nil {
		t.Fatalf("BeamIrradiance(Mars): %v", err)
	}
	if math.Abs(atMars-590) > 1 {
		t.Errorf("beam at Mars mean distance = %v, want ≈590", atMars)
	}
}

func TestBeamIrradiance_InvalidRadius(t *testing.T) {
	m := DefaultModel()

	for _, r := range []float64{0, -1, math.NaN()} {
		_, err := m.BeamIrradiance(r)

		var geomErr *InvalidGeometryError
		if !errors.As(err, &geomErr) {
			t.Errorf("r=%v: expected InvalidGeometryError, got %v", r, err)
		}
	}
}

func TestCosZenithAngle(t *testing.T) {
	// Sun overhead: equator, zero declination, local noon.
	if got := CosZenithAngle(0, 0, 0); got != 1 {
		t.Errorf("overhead sun: cos(zenith) = %v, want 1", got)
	}

	// Local midnight on the equator: sun at the nadir.
	if got := CosZenithAngle(0, 0, math.Pi); got != -1 {
		t.Errorf("nadir sun: cos(zenith) = %v, want −1", got)
	}

	// At the pole the hour angle is irrelevant: cos(zenith) = sin(δ).
	decl := astromath.Radians(15)
	atPole := CosZenithAngle(math.Pi/2, decl, 1.234)
	if math.Abs(atPole-math.Sin(decl)) > 1e-12 {
		t.Errorf("polar site: cos(zenith) = %v, want sin(δ) = %v", atPole, math.Sin(decl))
	}
}

func TestInstantaneousFlux(t *testing.T) {
	m := DefaultModel()

	// Overhead sun at the reference distance returns the solar constant exactly.
	flux, err := m.InstantaneousFlux(m.RefDistance, 0, 0, 0)
	if err != nil {
		t.Fatalf("InstantaneousFlux: %v", err)
	}
	if flux != m.Constant {
		t.Errorf("overhead flux at r₀ = %v, want exactly %v", flux, m.Constant)
	}

	// Below the horizon: clamped to zero, not negative.
	flux, err = m.InstantaneousFlux(1, 0, 0, math.Pi)
	if err != nil {
		t.Fatalf("InstantaneousFlux: %v", err)
	}
	if flux != 0 {
		t.Errorf("below-horizon flux = %v, want 0", flux)
	}

	// Geometry errors propagate.
	_, err = m.InstantaneousFlux(-0.5, 0, 0, 0)
	var geomErr *InvalidGeometryError
	if !errors.As(err, &geomErr) {
		t.Errorf("expected InvalidGeometryError, got %v", err)
	}
}

func TestDeclination(t *testing.T) {
	obliquity := astromath.Radians(23.44)

	// Equinoxes: λ = 0 and λ = π.
	if got := Declination(obliquity, 0); got != 0 {
		t.Errorf("vernal equinox: δ = %v, want 0", got)
	}
	if got := Declination(obliquity, math.Pi); math.Abs(got) > 1e-12 {
		t.Errorf("autumnal equinox: δ = %v, want 0", got)
	}

	// Solstices: declination reaches ±obliquity.
	if got := Declination(obliquity, math.Pi/2); math.Abs(got-obliquity) > 1e-12 {
		t.Errorf("summer solstice: δ = %v, want ε = %v", got, obliquity)
	}
	if got := Declination(obliquity, 3*math.Pi/2); math.Abs(got+obliquity) > 1e-12 {
		t.Errorf("winter solstice: δ = %v, want −ε = %v", got, -obliquity)
	}
}

func TestSunsetHourAngle(t *testing.T) {
	decl := astromath.Radians(20)

	// Equator: the sun rises and sets at ±π/2 regardless of season.
	if got := SunsetHourAngle(0, decl); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("equator: h_s = %v, want π/2", got)
	}

	// Polar day: high northern latitude in northern summer.
	if got := SunsetHourAngle(astromath.Radians(80), decl); got != math.Pi {
		t.Errorf("polar day: h_s = %v, want π", got)
	}

	// Polar night: same latitude in northern winter.
	if got := SunsetHourAngle(astromath.Radians(80), -decl); got != 0 {
		t.Errorf("polar night: h_s = %v, want 0", got)
	}
}
