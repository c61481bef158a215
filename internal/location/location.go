package location

import (
	"fmt"
	"log/slog"
	"strconv"

	"weatherpoint/internal/apperr"
	"weatherpoint/internal/providers/openstreetmap"
	"weatherpoint/internal/types"
)

// Service resolves free-form address text or coordinate pairs into a
// ResolvedLocation with a display name.
type Service interface {
	// Forward geocodes address text into coordinates plus a display name.
	Forward(text string) (*types.ResolvedLocation, error)

	// Reverse looks up a display name for a coordinate pair. A failed or
	// empty lookup degrades to a formatted coordinate string and is not
	// reported as an error.
	Reverse(latitude, longitude float64) (*types.ResolvedLocation, error)
}

// GeocodeProvider defines the interface for geocoding data providers
type GeocodeProvider interface {
	Search(query string) ([]openstreetmap.SearchAPIResult, error)
	Reverse(latitude, longitude float64) (*openstreetmap.ReverseAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	provider GeocodeProvider
	logger   *slog.Logger
}

// NewService creates a location service backed by the Nominatim client
func NewService(cfg openstreetmap.ClientConfig, logger *slog.Logger) Service {
	return NewServiceWithProvider(openstreetmap.NewClient(cfg, logger), logger)
}

// NewServiceWithProvider creates a location service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		provider: provider,
		logger:   logger.With("component", "location-service"),
	}
}

func (s *locationService) Forward(text string) (*types.ResolvedLocation, error) {
	results, err := s.provider.Search(text)
	if err != nil {
		return nil, fmt.Errorf("forward geocode of %q failed: %w", text, err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no geocoding match for %q: %w", text, apperr.ErrNotFound)
	}

	// First result is the highest-confidence match
	best := results[0]

	lat, latErr := strconv.ParseFloat(best.Lat, 64)
	lon, lonErr := strconv.ParseFloat(best.Lon, 64)
	if latErr != nil || lonErr != nil {
		return nil, fmt.Errorf("geocoding match for %q has unparsable coordinates: %w", text, apperr.ErrUpstreamMalformed)
	}

	coords := types.NewCoords(lat, lon)
	if err := coords.Validate(); err != nil {
		return nil, fmt.Errorf("geocoding match for %q has out-of-range coordinates: %w", text, apperr.ErrUpstreamMalformed)
	}

	resolved := types.NewResolvedLocation(lat, lon, best.DisplayName)
	return &resolved, nil
}

func (s *locationService) Reverse(latitude, longitude float64) (*types.ResolvedLocation, error) {
	coords := types.NewCoords(latitude, longitude)
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.provider.Reverse(latitude, longitude)
	if err != nil {
		// Display-name degradation, not a failure: the coordinates are
		// already known, only the label is missing.
		s.logger.Warn("reverse geocode failed, using coordinate label",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		resolved := types.NewResolvedLocation(latitude, longitude, "")
		return &resolved, nil
	}

	resolved := types.NewResolvedLocation(latitude, longitude, displayName(resp))
	return &resolved, nil
}

// displayName picks the best label from a reverse lookup. Nominatim
// reports "Unable to geocode" via the error field with a 200 status.
func displayName(resp *openstreetmap.ReverseAPIResponse) string {
	if resp == nil || resp.Error != "" {
		return ""
	}
	if resp.Name != "" {
		return resp.Name
	}
	return resp.DisplayName
}
