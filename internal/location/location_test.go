package location

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"weatherpoint/internal/apperr"
	"weatherpoint/internal/providers/openstreetmap"
	"weatherpoint/internal/types"
)

// Mock provider for testing

type mockGeocodeProvider struct {
	searchResults []openstreetmap.SearchAPIResult
	searchErr     error
	reverseResp   *openstreetmap.ReverseAPIResponse
	reverseErr    error

	searchCalls  int
	reverseCalls int
}

func (m *mockGeocodeProvider) Search(query string) ([]openstreetmap.SearchAPIResult, error) {
	m.searchCalls++
	return m.searchResults, m.searchErr
}

func (m *mockGeocodeProvider) Reverse(latitude, longitude float64) (*openstreetmap.ReverseAPIResponse, error) {
	m.reverseCalls++
	return m.reverseResp, m.reverseErr
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCoords  *types.Coords
		wantAddress string
		wantErr     error
	}{
		{
			name:       "plain coordinate pair",
			input:      "48.8566,2.3522",
			wantCoords: &types.Coords{Latitude: 48.8566, Longitude: 2.3522},
		},
		{
			name:       "coordinate pair with whitespace",
			input:      "  48.8566 , 2.3522  ",
			wantCoords: &types.Coords{Latitude: 48.8566, Longitude: 2.3522},
		},
		{
			name:       "signed integers",
			input:      "-90,+180",
			wantCoords: &types.Coords{Latitude: -90, Longitude: 180},
		},
		{
			name:       "zero zero",
			input:      "0,0",
			wantCoords: &types.Coords{Latitude: 0, Longitude: 0},
		},
		{
			name:        "free-form address",
			input:       "Dallas, TX",
			wantAddress: "Dallas, TX",
		},
		{
			name:        "address is trimmed",
			input:       "  75001  ",
			wantAddress: "75001",
		},
		{
			name:        "out-of-range pair treated as address",
			input:       "91,0",
			wantAddress: "91,0",
		},
		{
			name:        "longitude out of range treated as address",
			input:       "0,-180.5",
			wantAddress: "0,-180.5",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: apperr.ErrInvalidInput,
		},
		{
			name:    "whitespace-only input",
			input:   "   \t ",
			wantErr: apperr.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Normalize(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error = %v", tt.input, err)
			}

			if tt.wantCoords != nil {
				if got.Coords == nil {
					t.Fatalf("Normalize(%q) expected coordinates, got address %q", tt.input, got.Address)
				}
				if *got.Coords != *tt.wantCoords {
					t.Errorf("Normalize(%q) coords = %v, want %v", tt.input, *got.Coords, *tt.wantCoords)
				}
				return
			}

			if got.Coords != nil {
				t.Fatalf("Normalize(%q) expected address, got coordinates %v", tt.input, *got.Coords)
			}
			if got.Address != tt.wantAddress {
				t.Errorf("Normalize(%q) address = %q, want %q", tt.input, got.Address, tt.wantAddress)
			}
		})
	}
}

func TestLocationService_Forward(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		searchResults   []openstreetmap.SearchAPIResult
		searchErr       error
		wantErr         error
		wantDisplayName string
		wantLat         float64
		wantLon         float64
	}{
		{
			name: "successful forward geocode",
			text: "Dallas, TX",
			searchResults: []openstreetmap.SearchAPIResult{
				{
					Lat:         "32.7767",
					Lon:         "-96.7970",
					DisplayName: "Dallas, Dallas County, Texas, United States",
				},
			},
			wantDisplayName: "Dallas, Dallas County, Texas, United States",
			wantLat:         32.7767,
			wantLon:         -96.7970,
		},
		{
			name:          "zero matches",
			text:          "Nowhere12345xyz",
			searchResults: []openstreetmap.SearchAPIResult{},
			wantErr:       apperr.ErrNotFound,
		},
		{
			name:      "provider unavailable",
			text:      "Dallas, TX",
			searchErr: apperr.ErrUpstreamUnavailable,
			wantErr:   apperr.ErrUpstreamUnavailable,
		},
		{
			name: "unparsable coordinates in match",
			text: "Dallas, TX",
			searchResults: []openstreetmap.SearchAPIResult{
				{Lat: "not-a-number", Lon: "-96.7970", DisplayName: "Dallas"},
			},
			wantErr: apperr.ErrUpstreamMalformed,
		},
		{
			name: "out-of-range coordinates in match",
			text: "Dallas, TX",
			searchResults: []openstreetmap.SearchAPIResult{
				{Lat: "132.7767", Lon: "-96.7970", DisplayName: "Dallas"},
			},
			wantErr: apperr.ErrUpstreamMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockGeocodeProvider{
				searchResults: tt.searchResults,
				searchErr:     tt.searchErr,
			}
			service := NewServiceWithProvider(provider, slog.Default())

			got, err := service.Forward(tt.text)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Forward() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Forward() unexpected error = %v", err)
			}

			if got.Coordinates.Latitude != tt.wantLat || got.Coordinates.Longitude != tt.wantLon {
				t.Errorf("Forward() coords = %v, want (%v, %v)", got.Coordinates, tt.wantLat, tt.wantLon)
			}
			if got.DisplayName != tt.wantDisplayName {
				t.Errorf("Forward() display name = %q, want %q", got.DisplayName, tt.wantDisplayName)
			}
		})
	}
}

func TestLocationService_Reverse(t *testing.T) {
	tests := []struct {
		name            string
		lat             float64
		lon             float64
		reverseResp     *openstreetmap.ReverseAPIResponse
		reverseErr      error
		wantErr         error
		wantDisplayName string
	}{
		{
			name: "successful reverse geocode prefers name",
			lat:  39.11539,
			lon:  -107.65840,
			reverseResp: &openstreetmap.ReverseAPIResponse{
				Name:        "Aspen",
				DisplayName: "Aspen, Pitkin County, Colorado, United States",
			},
			wantDisplayName: "Aspen",
		},
		{
			name: "falls back to display name when name empty",
			lat:  39.11539,
			lon:  -107.65840,
			reverseResp: &openstreetmap.ReverseAPIResponse{
				DisplayName: "Pitkin County, Colorado, United States",
			},
			wantDisplayName: "Pitkin County, Colorado, United States",
		},
		{
			name:            "provider failure degrades to coordinate label",
			lat:             48.8566,
			lon:             2.3522,
			reverseErr:      apperr.ErrUpstreamUnavailable,
			wantDisplayName: "48.8566, 2.3522",
		},
		{
			name:            "unable-to-geocode response degrades to coordinate label",
			lat:             0,
			lon:             0,
			reverseResp:     &openstreetmap.ReverseAPIResponse{Error: "Unable to geocode"},
			wantDisplayName: "0, 0",
		},
		{
			name:    "invalid latitude",
			lat:     95,
			lon:     0,
			wantErr: apperr.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockGeocodeProvider{
				reverseResp: tt.reverseResp,
				reverseErr:  tt.reverseErr,
			}
			service := NewServiceWithProvider(provider, slog.Default())

			got, err := service.Reverse(tt.lat, tt.lon)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Reverse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Reverse() unexpected error = %v", err)
			}

			if got.Coordinates.Latitude != tt.lat || got.Coordinates.Longitude != tt.lon {
				t.Errorf("Reverse() coords = %v, want (%v, %v)", got.Coordinates, tt.lat, tt.lon)
			}
			if !strings.Contains(got.DisplayName, tt.wantDisplayName) {
				t.Errorf("Reverse() display name = %q, want %q", got.DisplayName, tt.wantDisplayName)
			}
		})
	}
}
