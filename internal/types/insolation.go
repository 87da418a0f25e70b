package types

import "time"

// InsolationResult is the output of an annual insolation survey for one
// planet and site latitude.
type InsolationResult struct {
	Planet    string             `json:"planet"`
	Latitude  float64            `json:"latitude"` // radians
	Samples   []InsolationSample `json:"samples"`
	Stats     InsolationStats    `json:"stats"`
	Timestamp time.Time          `json:"timestamp"`
	Duration  time.Duration      `json:"duration"`
}

// InsolationSample is one point in the survey, taken at a fixed orbital time.
type InsolationSample struct {
	Time          float64 `json:"time"`            // days since epoch
	Radius        float64 `json:"radius"`          // AU
	TrueLongitude float64 `json:"true_longitude"`  // radians
	Declination   float64 `json:"declination"`     // radians
	DailyMeanFlux float64 `json:"daily_mean_flux"` // W/m²
}

// InsolationStats summarizes the daily-mean flux across the orbit.
type InsolationStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}
