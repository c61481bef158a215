// Package resolve composes the location normalizer, the geocoding
// resolver, and the weather fetcher into a single lookup pipeline.
package resolve

import (
	"fmt"
	"log/slog"
	"sync"

	"weatherpoint/internal/location"
	"weatherpoint/internal/types"
	"weatherpoint/internal/weather"
)

// Result is the composite outcome of one lookup: where, what it is
// called, and the weather there.
type Result struct {
	Location types.ResolvedLocation `json:"location"`
	Current  weather.Snapshot       `json:"current"`
	Forecast []weather.ForecastDay  `json:"forecast"`
}

// Service runs the full lookup pipeline for raw user input.
type Service interface {
	Resolve(rawInput string) (*Result, error)
}

type pipeline struct {
	locations    location.Service
	weather      weather.Service
	forecastDays int
	logger       *slog.Logger
}

// NewService creates a resolution pipeline over the given location and
// weather services. forecastDays controls the length of the forecast in
// the composite result.
func NewService(locations location.Service, weatherSvc weather.Service, forecastDays int, logger *slog.Logger) Service {
	return &pipeline{
		locations:    locations,
		weather:      weatherSvc,
		forecastDays: forecastDays,
		logger:       logger.With("component", "resolve-pipeline"),
	}
}

// Resolve normalizes the input, resolves it to coordinates plus a display
// name, and fetches current conditions and the forecast. Normalization and
// geocoding failures propagate before any weather call is made; either
// weather failure propagates whole, never as partial data.
func (p *pipeline) Resolve(rawInput string) (*Result, error) {
	query, err := location.Normalize(rawInput)
	if err != nil {
		return nil, err
	}

	var loc *types.ResolvedLocation
	if query.Coords != nil {
		loc, err = p.locations.Reverse(query.Coords.Latitude, query.Coords.Longitude)
	} else {
		loc, err = p.locations.Forward(query.Address)
	}
	if err != nil {
		return nil, err
	}

	lat := loc.Coordinates.Latitude
	lon := loc.Coordinates.Longitude

	// The two weather calls have no data dependency, so run them in
	// parallel.
	var (
		wg          sync.WaitGroup
		current     *weather.Snapshot
		forecast    []weather.ForecastDay
		currentErr  error
		forecastErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		current, currentErr = p.weather.Current(lat, lon)
		if currentErr != nil {
			currentErr = fmt.Errorf("failed to get current weather: %w", currentErr)
		}
	}()

	go func() {
		defer wg.Done()
		forecast, forecastErr = p.weather.Forecast(lat, lon, p.forecastDays)
		if forecastErr != nil {
			forecastErr = fmt.Errorf("failed to get forecast: %w", forecastErr)
		}
	}()

	wg.Wait()

	if currentErr != nil {
		return nil, currentErr
	}
	if forecastErr != nil {
		return nil, forecastErr
	}

	p.logger.Debug("resolved location",
		"input", rawInput,
		"display_name", loc.DisplayName,
		"latitude", lat,
		"longitude", lon,
		"forecast_days", len(forecast),
	)

	return &Result{
		Location: *loc,
		Current:  *current,
		Forecast: forecast,
	}, nil
}
