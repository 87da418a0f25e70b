package solar

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// dailyQuadNodes is the Gauss-Legendre node count for the daily integral.
// The integrand is smooth, so this is far past the accuracy of the inputs.
const dailyQuadNodes = 64

// DailyAverageFlux returns the direct flux on a horizontal surface averaged
// over one full solar day: the instantaneous flux integrated over the sunlit
// hour-angle range [−h_s, +h_s] and divided by the 2π of a whole day.
// Returns zero in polar night; in polar day the sunlit range spans the whole
// day.
func (m Model) DailyAverageFlux(r, latitude, declination float64) (float64, error) {
	beam, err := m.BeamIrradiance(r)
	if err != nil {
		return 0, err
	}

	hs := SunsetHourAngle(latitude, declination)
	if hs == 0 {
		return 0, nil
	}

	integral := quad.Fixed(func(h float64) float64 {
		return math.Max(0, CosZenithAngle(latitude, declination, h))
	}, -hs, hs, dailyQuadNodes, nil, 0)

	return beam * integral / (2 * math.Pi), nil
}
