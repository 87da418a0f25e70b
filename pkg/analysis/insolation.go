// Package analysis runs insolation surveys over whole orbits, the main way
// downstream climate simulations consume this library in bulk.
package analysis

import (
	"fmt"
	"log"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/solweaver/heliorbit/internal/types"
	astromath "github.com/solweaver/heliorbit/pkg/astronomy/math"
	"github.com/solweaver/heliorbit/pkg/astronomy/planets"
	"github.com/solweaver/heliorbit/pkg/solar"
)

// Manager handles insolation analysis operations.
type Manager struct {
	model solar.Model
}

// NewManager creates an analysis manager using the given irradiance model.
func NewManager(model solar.Model) *Manager {
	return &Manager{model: model}
}

// AnnualInsolation samples one full orbital period of the planet and
// computes the daily-mean direct flux at the given site latitude (radians)
// for each sample. Samples are evenly spaced in time, starting at perihelion.
func (m *Manager) AnnualInsolation(p planets.Planet, latitude float64, samples int) (*types.InsolationResult, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("analysis: sample count must be positive, got %d", samples)
	}
	if err := p.Elements.Validate(); err != nil {
		return nil, fmt.Errorf("analysis: %s: %w", p.Name, err)
	}

	log.Printf("Starting annual insolation analysis for %s at latitude %.2f°",
		p.Name, astromath.Degrees(latitude))
	start := time.Now()

	result := &types.InsolationResult{
		Planet:    p.Name,
		Latitude:  latitude,
		Samples:   make([]types.InsolationSample, 0, samples),
		Timestamp: start,
	}

	fluxes := make([]float64, 0, samples)
	step := p.Elements.Period / float64(samples)
	for i := 0; i < samples; i++ {
		t := p.Elements.Epoch + float64(i)*step

		pos, err := p.Elements.PositionAt(t)
		if err != nil {
			return nil, fmt.Errorf("analysis: position at t=%.3f: %w", t, err)
		}

		decl := solar.Declination(p.Obliquity, pos.TrueLongitude)
		flux, err := m.model.DailyAverageFlux(pos.Radius, latitude, decl)
		if err != nil {
			return nil, fmt.Errorf("analysis: flux at t=%.3f: %w", t, err)
		}

		result.Samples = append(result.Samples, types.InsolationSample{
			Time:          t,
			Radius:        pos.Radius,
			TrueLongitude: pos.TrueLongitude,
			Declination:   decl,
			DailyMeanFlux: flux,
		})
		fluxes = append(fluxes, flux)
	}

	result.Stats = types.InsolationStats{
		Mean:   stat.Mean(fluxes, nil),
		StdDev: stat.StdDev(fluxes, nil),
		Min:    floats.Min(fluxes),
		Max:    floats.Max(fluxes),
	}
	result.Duration = time.Since(start)

	log.Printf("Annual insolation analysis for %s completed in %v (%d samples)",
		p.Name, result.Duration, samples)
	return result, nil
}
