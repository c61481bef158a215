package types

import (
	"fmt"

	"weatherpoint/internal/apperr"
)

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate checks that the coordinate pair is within the valid
// latitude/longitude ranges.
func (c Coords) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]: %w", c.Latitude, apperr.ErrInvalidInput)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]: %w", c.Longitude, apperr.ErrInvalidInput)
	}
	return nil
}

// String formats the pair the way it is shown when no geocoded name is
// available, e.g. "48.8566, 2.3522".
func (c Coords) String() string {
	return fmt.Sprintf("%g, %g", c.Latitude, c.Longitude)
}
