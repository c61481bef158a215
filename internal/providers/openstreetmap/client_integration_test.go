//go:build integration

package openstreetmap

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func newIntegrationClient() *Client {
	return NewClient(ClientConfig{
		ContactEmail: "dev@example.com",
		Timeout:      10 * time.Second,
	}, slog.Default())
}

func TestClient_Search_Integration(t *testing.T) {
	client := newIntegrationClient()

	t.Logf("Making API call to Nominatim /search...")

	results, err := client.Search("Dallas, TX")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}

	if len(results) == 0 {
		t.Fatal("Expected at least one result for Dallas, TX")
	}

	rawJSON, err := json.MarshalIndent(results[0], "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal result: %v", err)
	}
	t.Logf("First result:\n%s", string(rawJSON))

	if results[0].Lat == "" || results[0].Lon == "" {
		t.Error("Lat/Lon fields are empty")
	}
	if results[0].DisplayName == "" {
		t.Error("DisplayName is empty")
	}
}

func TestClient_Reverse_Integration(t *testing.T) {
	// Test coordinates: Aspen, CO area
	lat := 39.11539
	lon := -107.65840

	client := newIntegrationClient()

	t.Logf("Making API call to Nominatim /reverse...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.Reverse(lat, lon)
	if err != nil {
		t.Fatalf("Failed to reverse geocode: %v", err)
	}

	if resp == nil {
		t.Fatal("Response is nil")
	}

	t.Logf("Location Details:")
	t.Logf("  Place ID: %d", resp.PlaceId)
	t.Logf("  Display Name: %s", resp.DisplayName)

	if resp.Address.State != "" {
		t.Logf("  State: %s", resp.Address.State)
	}
	if resp.Address.Country != "" {
		t.Logf("  Country: %s", resp.Address.Country)
	}

	if resp.DisplayName == "" {
		t.Error("DisplayName is empty")
	}
}
