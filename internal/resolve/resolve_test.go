package resolve

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"weatherpoint/internal/apperr"
	"weatherpoint/internal/types"
	"weatherpoint/internal/weather"
)

// Mock services for testing

type mockLocationService struct {
	forwardLoc *types.ResolvedLocation
	forwardErr error
	reverseLoc *types.ResolvedLocation
	reverseErr error

	forwardCalls int
	reverseCalls int
}

func (m *mockLocationService) Forward(text string) (*types.ResolvedLocation, error) {
	m.forwardCalls++
	return m.forwardLoc, m.forwardErr
}

func (m *mockLocationService) Reverse(latitude, longitude float64) (*types.ResolvedLocation, error) {
	m.reverseCalls++
	return m.reverseLoc, m.reverseErr
}

type mockWeatherService struct {
	mu sync.Mutex

	snapshot    *weather.Snapshot
	currentErr  error
	forecast    []weather.ForecastDay
	forecastErr error

	currentCalls  int
	forecastCalls int
}

func (m *mockWeatherService) Current(latitude, longitude float64) (*weather.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentCalls++
	return m.snapshot, m.currentErr
}

func (m *mockWeatherService) Forecast(latitude, longitude float64, days int) ([]weather.ForecastDay, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forecastCalls++
	if m.forecastErr != nil {
		return nil, m.forecastErr
	}
	if m.forecast != nil {
		return m.forecast, nil
	}
	forecast := make([]weather.ForecastDay, days)
	return forecast, nil
}

func sampleSnapshot() *weather.Snapshot {
	return &weather.Snapshot{
		Temperature: 18.4,
		Wind:        types.NewWind(11.2, 270),
		Condition:   types.NewWeather(2),
	}
}

func newPipeline(locations *mockLocationService, weatherSvc *mockWeatherService) Service {
	return NewService(locations, weatherSvc, 5, slog.Default())
}

func TestPipeline_Resolve_Coordinates(t *testing.T) {
	reverseLoc := types.NewResolvedLocation(48.8566, 2.3522, "Paris, Ile-de-France, France")
	locations := &mockLocationService{reverseLoc: &reverseLoc}
	weatherSvc := &mockWeatherService{snapshot: sampleSnapshot()}

	result, err := newPipeline(locations, weatherSvc).Resolve("48.8566,2.3522")
	if err != nil {
		t.Fatalf("Resolve() unexpected error = %v", err)
	}

	if locations.reverseCalls != 1 || locations.forwardCalls != 0 {
		t.Errorf("reverse/forward calls = %d/%d, want 1/0", locations.reverseCalls, locations.forwardCalls)
	}
	if result.Location.Coordinates.Latitude != 48.8566 || result.Location.Coordinates.Longitude != 2.3522 {
		t.Errorf("Location coords = %v, want (48.8566, 2.3522)", result.Location.Coordinates)
	}
	if result.Location.DisplayName != "Paris, Ile-de-France, France" {
		t.Errorf("DisplayName = %q, want reverse-geocoded name", result.Location.DisplayName)
	}
	if result.Current.Temperature != 18.4 {
		t.Errorf("Current.Temperature = %v, want 18.4", result.Current.Temperature)
	}
	if len(result.Forecast) != 5 {
		t.Errorf("Forecast length = %d, want 5", len(result.Forecast))
	}
}

func TestPipeline_Resolve_CoordinatesWithFallbackName(t *testing.T) {
	// The location service degrades to a coordinate label itself; the
	// pipeline passes it through untouched.
	fallbackLoc := types.NewResolvedLocation(48.8566, 2.3522, "")
	locations := &mockLocationService{reverseLoc: &fallbackLoc}
	weatherSvc := &mockWeatherService{snapshot: sampleSnapshot()}

	result, err := newPipeline(locations, weatherSvc).Resolve("48.8566,2.3522")
	if err != nil {
		t.Fatalf("Resolve() unexpected error = %v", err)
	}
	if result.Location.DisplayName != "48.8566, 2.3522" {
		t.Errorf("DisplayName = %q, want coordinate fallback", result.Location.DisplayName)
	}
}

func TestPipeline_Resolve_Address(t *testing.T) {
	forwardLoc := types.NewResolvedLocation(32.7767, -96.7970, "Dallas, Dallas County, Texas, United States")
	locations := &mockLocationService{forwardLoc: &forwardLoc}
	weatherSvc := &mockWeatherService{snapshot: sampleSnapshot()}

	result, err := newPipeline(locations, weatherSvc).Resolve("Dallas, TX")
	if err != nil {
		t.Fatalf("Resolve() unexpected error = %v", err)
	}

	if locations.forwardCalls != 1 || locations.reverseCalls != 0 {
		t.Errorf("forward/reverse calls = %d/%d, want 1/0", locations.forwardCalls, locations.reverseCalls)
	}
	if result.Location.Coordinates.Latitude != 32.7767 {
		t.Errorf("Latitude = %v, want 32.7767", result.Location.Coordinates.Latitude)
	}
	if weatherSvc.currentCalls != 1 || weatherSvc.forecastCalls != 1 {
		t.Errorf("current/forecast calls = %d/%d, want 1/1", weatherSvc.currentCalls, weatherSvc.forecastCalls)
	}
}

func TestPipeline_Resolve_InvalidInputMakesNoCalls(t *testing.T) {
	locations := &mockLocationService{}
	weatherSvc := &mockWeatherService{}

	_, err := newPipeline(locations, weatherSvc).Resolve("   ")
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("Resolve() error = %v, want %v", err, apperr.ErrInvalidInput)
	}

	if locations.forwardCalls != 0 || locations.reverseCalls != 0 {
		t.Errorf("location service was called %d/%d times, want 0/0", locations.forwardCalls, locations.reverseCalls)
	}
	if weatherSvc.currentCalls != 0 || weatherSvc.forecastCalls != 0 {
		t.Errorf("weather service was called %d/%d times, want 0/0", weatherSvc.currentCalls, weatherSvc.forecastCalls)
	}
}

func TestPipeline_Resolve_GeocodeNotFoundMakesNoWeatherCall(t *testing.T) {
	locations := &mockLocationService{
		forwardErr: fmt.Errorf("no geocoding match: %w", apperr.ErrNotFound),
	}
	weatherSvc := &mockWeatherService{}

	_, err := newPipeline(locations, weatherSvc).Resolve("Nowhere12345xyz")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Resolve() error = %v, want %v", err, apperr.ErrNotFound)
	}

	if weatherSvc.currentCalls != 0 || weatherSvc.forecastCalls != 0 {
		t.Errorf("weather service was called %d/%d times, want 0/0", weatherSvc.currentCalls, weatherSvc.forecastCalls)
	}
}

func TestPipeline_Resolve_GeocoderUnavailable(t *testing.T) {
	locations := &mockLocationService{
		forwardErr: fmt.Errorf("search failed: %w", apperr.ErrUpstreamUnavailable),
	}
	weatherSvc := &mockWeatherService{}

	_, err := newPipeline(locations, weatherSvc).Resolve("Dallas, TX")
	if !errors.Is(err, apperr.ErrUpstreamUnavailable) {
		t.Fatalf("Resolve() error = %v, want %v", err, apperr.ErrUpstreamUnavailable)
	}
	if weatherSvc.currentCalls != 0 || weatherSvc.forecastCalls != 0 {
		t.Errorf("weather service was called after geocoding failure")
	}
}

func TestPipeline_Resolve_WeatherFailuresPropagate(t *testing.T) {
	tests := []struct {
		name        string
		currentErr  error
		forecastErr error
		wantErr     error
	}{
		{
			name:       "current weather unavailable",
			currentErr: apperr.ErrUpstreamUnavailable,
			wantErr:    apperr.ErrUpstreamUnavailable,
		},
		{
			name:        "forecast malformed",
			forecastErr: apperr.ErrUpstreamMalformed,
			wantErr:     apperr.ErrUpstreamMalformed,
		},
		{
			name:        "both fail, current error wins",
			currentErr:  apperr.ErrUpstreamUnavailable,
			forecastErr: apperr.ErrUpstreamMalformed,
			wantErr:     apperr.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reverseLoc := types.NewResolvedLocation(48.8566, 2.3522, "Paris")
			locations := &mockLocationService{reverseLoc: &reverseLoc}
			weatherSvc := &mockWeatherService{
				snapshot:    sampleSnapshot(),
				currentErr:  tt.currentErr,
				forecastErr: tt.forecastErr,
			}

			result, err := newPipeline(locations, weatherSvc).Resolve("48.8566,2.3522")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
			}
			if result != nil {
				t.Errorf("Resolve() returned partial result %v alongside error", result)
			}
		})
	}
}
