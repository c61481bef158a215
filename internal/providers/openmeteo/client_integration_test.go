//go:build integration

package openmeteo

import (
	"log/slog"
	"testing"
	"time"
)

func newIntegrationClient() *Client {
	return NewClient(ClientConfig{Timeout: 10 * time.Second}, slog.Default())
}

func TestClient_GetCurrentWeather_Integration(t *testing.T) {
	// Test coordinates: Paris
	lat := 48.8566
	lon := 2.3522

	client := newIntegrationClient()

	t.Logf("Making API call to Open-Meteo...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.GetCurrentWeather(lat, lon)
	if err != nil {
		t.Fatalf("Failed to get current weather: %v", err)
	}

	if resp.CurrentWeather == nil {
		t.Fatal("Response is missing current_weather block")
	}

	t.Logf("Current Conditions:")
	t.Logf("  Temperature: %.1f", resp.CurrentWeather.Temperature)
	t.Logf("  Wind speed: %.1f", resp.CurrentWeather.Windspeed)
	t.Logf("  Weather code: %d", resp.CurrentWeather.Weathercode)
	t.Logf("  Observed at: %s", resp.CurrentWeather.Time)

	if resp.CurrentWeather.Time == "" {
		t.Error("Observation time is empty")
	}
}

func TestClient_GetDailyForecast_Integration(t *testing.T) {
	lat := 48.8566
	lon := 2.3522

	client := newIntegrationClient()

	resp, err := client.GetDailyForecast(lat, lon, 5)
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	if resp.Daily == nil {
		t.Fatal("Response is missing daily block")
	}

	if len(resp.Daily.Time) != 5 {
		t.Errorf("Expected 5 forecast days, got %d", len(resp.Daily.Time))
	}

	for i := range resp.Daily.Time {
		t.Logf("  %s: min=%.1f max=%.1f code=%d",
			resp.Daily.Time[i],
			resp.Daily.Temperature2mMin[i],
			resp.Daily.Temperature2mMax[i],
			resp.Daily.Weathercode[i],
		)
	}
}
