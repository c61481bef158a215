package weather

import (
	"fmt"
	"log/slog"
	"time"

	"weatherpoint/internal/apperr"
	"weatherpoint/internal/providers/openmeteo"
	"weatherpoint/internal/types"
)

// Service fetches current conditions and daily forecasts for a
// coordinate pair.
type Service interface {
	Current(latitude, longitude float64) (*Snapshot, error)
	Forecast(latitude, longitude float64, days int) ([]ForecastDay, error)
}

// ForecastProvider defines the interface for weather data providers
type ForecastProvider interface {
	GetCurrentWeather(latitude, longitude float64) (*openmeteo.CurrentWeatherAPIResponse, error)
	GetDailyForecast(latitude, longitude float64, forecastDays int) (*openmeteo.ForecastAPIResponse, error)
}

// weatherService implements the Service interface
type weatherService struct {
	provider ForecastProvider
	logger   *slog.Logger
}

// NewService creates a weather service backed by the Open-Meteo client
func NewService(cfg openmeteo.ClientConfig, logger *slog.Logger) Service {
	return NewServiceWithProvider(openmeteo.NewClient(cfg, logger), logger)
}

// NewServiceWithProvider creates a weather service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider ForecastProvider, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		logger:   logger.With("component", "weather-service"),
	}
}

func (s *weatherService) Current(latitude, longitude float64) (*Snapshot, error) {
	if err := types.NewCoords(latitude, longitude).Validate(); err != nil {
		return nil, err
	}

	resp, err := s.provider.GetCurrentWeather(latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	return translateCurrentWeather(resp)
}

func (s *weatherService) Forecast(latitude, longitude float64, days int) ([]ForecastDay, error) {
	if days <= 0 {
		return nil, fmt.Errorf("forecast days must be positive, got %d: %w", days, apperr.ErrInvalidInput)
	}
	if days > openmeteo.MaxForecastDays {
		s.logger.Debug("clamping forecast days", "requested", days, "max", openmeteo.MaxForecastDays)
		days = openmeteo.MaxForecastDays
	}
	if err := types.NewCoords(latitude, longitude).Validate(); err != nil {
		return nil, err
	}

	resp, err := s.provider.GetDailyForecast(latitude, longitude, days)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return translateDailyForecast(resp)
}

// translateCurrentWeather converts an Open-Meteo current weather response
// to the domain Snapshot type
func translateCurrentWeather(resp *openmeteo.CurrentWeatherAPIResponse) (*Snapshot, error) {
	if resp == nil || resp.CurrentWeather == nil {
		return nil, fmt.Errorf("response is missing current_weather: %w", apperr.ErrUpstreamMalformed)
	}

	cw := resp.CurrentWeather
	observedAt, err := time.Parse(observationTimeLayout, cw.Time)
	if err != nil {
		return nil, fmt.Errorf("unparsable observation time %q: %w", cw.Time, apperr.ErrUpstreamMalformed)
	}

	return &Snapshot{
		Temperature: cw.Temperature,
		Wind:        types.NewWind(cw.Windspeed, cw.Winddirection),
		Condition:   types.NewWeather(cw.Weathercode),
		ObservedAt:  observedAt,
	}, nil
}

// translateDailyForecast converts an Open-Meteo daily forecast response to
// the domain ForecastDay sequence, in upstream (chronological) order
func translateDailyForecast(resp *openmeteo.ForecastAPIResponse) ([]ForecastDay, error) {
	if resp == nil || resp.Daily == nil {
		return nil, fmt.Errorf("response is missing daily forecast data: %w", apperr.ErrUpstreamMalformed)
	}

	daily := resp.Daily
	n := len(daily.Time)
	if n == 0 {
		return nil, fmt.Errorf("daily forecast is empty: %w", apperr.ErrUpstreamMalformed)
	}
	if len(daily.Temperature2mMax) != n || len(daily.Temperature2mMin) != n || len(daily.Weathercode) != n {
		return nil, fmt.Errorf("daily forecast arrays have unequal lengths: %w", apperr.ErrUpstreamMalformed)
	}

	forecast := make([]ForecastDay, 0, n)
	for i := 0; i < n; i++ {
		date, err := time.Parse(forecastDateLayout, daily.Time[i])
		if err != nil {
			return nil, fmt.Errorf("unparsable forecast date %q: %w", daily.Time[i], apperr.ErrUpstreamMalformed)
		}
		forecast = append(forecast, ForecastDay{
			Date:      date,
			MinTemp:   daily.Temperature2mMin[i],
			MaxTemp:   daily.Temperature2mMax[i],
			Condition: types.NewWeather(daily.Weathercode[i]),
		})
	}

	return forecast, nil
}
