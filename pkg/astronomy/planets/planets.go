// Package planets provides orbital presets for the bodies the library is
// typically asked about. Values are published elements; downstream projects
// with better ephemerides can construct their own OrbitalElements instead.
package planets

import (
	astromath "github.com/solweaver/heliorbit/pkg/astronomy/math"
	"github.com/solweaver/heliorbit/pkg/astronomy/orbital"
	"github.com/solweaver/heliorbit/pkg/solar"
)

// Planet bundles a body's orbit with the axial obliquity that drives its
// seasonal declination cycle.
type Planet struct {
	Name      string
	Elements  orbital.OrbitalElements
	Obliquity float64 // radians
}

// Earth returns Earth's orbit with the perihelion longitude used in the
// climate-modeling literature (Goosse et al., PERH = 102.04°, i.e.
// ϖ = 180° + 102.04° from the vernal equinox).
func Earth() Planet {
	return Planet{
		Name: "Earth",
		Elements: orbital.OrbitalElements{
			SemiMajorAxis:       1.0,
			Eccentricity:        0.0167,
			Epoch:               0,
			Period:              365.25636,
			LongitudePerihelion: astromath.Radians(180 + 102.04),
		},
		Obliquity: astromath.Radians(23.44),
	}
}

// Mars returns Mars' orbit. Perihelion falls at areocentric solar longitude
// Ls ≈ 251°, late southern spring (Appelbaum & Flood).
func Mars() Planet {
	return Planet{
		Name: "Mars",
		Elements: orbital.OrbitalElements{
			SemiMajorAxis:       1.523679,
			Eccentricity:        0.0934,
			Epoch:               0,
			Period:              686.98,
			LongitudePerihelion: astromath.Radians(251.0),
		},
		Obliquity: astromath.Radians(25.19),
	}
}

// Pluto returns Pluto's orbit, the highest-eccentricity body in the catalog
// and a useful stress case for the Kepler solver.
func Pluto() Planet {
	return Planet{
		Name: "Pluto",
		Elements: orbital.OrbitalElements{
			SemiMajorAxis:       39.2851,
			Eccentricity:        0.246682,
			Epoch:               0,
			Period:              90560,
			LongitudePerihelion: astromath.Radians(224.07),
		},
		Obliquity: astromath.Radians(119.59),
	}
}

// DeclinationAt returns the planet's solar declination at time t, derived
// from its orbital position.
func (p Planet) DeclinationAt(t float64) (float64, error) {
	pos, err := p.Elements.PositionAt(t)
	if err != nil {
		return 0, err
	}
	return solar.Declination(p.Obliquity, pos.TrueLongitude), nil
}
