package weather

import (
	"time"

	"weatherpoint/internal/types"
)

// Open-Meteo timestamp layouts with timezone=auto.
const (
	observationTimeLayout = "2006-01-02T15:04"
	forecastDateLayout    = "2006-01-02"
)

// Snapshot is a single-point-in-time weather observation.
type Snapshot struct {
	Temperature float64       `json:"temperature"`
	Wind        types.Wind    `json:"wind"`
	Condition   types.Weather `json:"condition"`
	ObservedAt  time.Time     `json:"observed_at"`
}

// ForecastDay is one day of a daily forecast series.
type ForecastDay struct {
	Date      time.Time     `json:"date"`
	MinTemp   float64       `json:"min_temp"`
	MaxTemp   float64       `json:"max_temp"`
	Condition types.Weather `json:"condition"`
}
