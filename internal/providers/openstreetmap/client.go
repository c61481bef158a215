package openstreetmap

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"weatherpoint/internal/apperr"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample requests:
//   https://nominatim.openstreetmap.org/search?q=Dallas%2C+TX&format=json&limit=1
//   https://nominatim.openstreetmap.org/reverse?lat=39.11&lon=-107.65&format=json
const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"

	userAgentTemplate = "weatherpoint/1.0 (%s)"
)

// ClientConfig carries the provider settings. ContactEmail goes into the
// User-Agent header; the Nominatim usage policy requires a way to reach
// the operator of the calling application.
type ClientConfig struct {
	BaseURL      string
	ContactEmail string
	Timeout      time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    baseURL,
		userAgent:  fmt.Sprintf(userAgentTemplate, cfg.ContactEmail),
		logger:     logger.With("component", "openstreetmap-client"),
	}
}

// Search performs a forward geocode of a free-form address and returns the
// candidate matches, best first. A reachable service with zero matches
// returns an empty slice, not an error.
func (c *Client) Search(query string) ([]SearchAPIResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/search"

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	c.logger.Debug("searching Nominatim", "query", query, "url", u.String())

	var results []SearchAPIResult
	if err := c.getJSON(u.String(), &results); err != nil {
		return nil, err
	}

	return results, nil
}

// Reverse looks up the place description for a coordinate pair.
func (c *Client) Reverse(latitude, longitude float64) (*ReverseAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/reverse"

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	c.logger.Debug("reverse geocoding",
		"latitude", latitude,
		"longitude", longitude,
		"url", u.String(),
	)

	var apiResp ReverseAPIResponse
	if err := c.getJSON(u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// getJSON issues the request and decodes the body into out. Transport and
// status failures map to apperr.ErrUpstreamUnavailable, undecodable bodies
// to apperr.ErrUpstreamMalformed.
func (c *Client) getJSON(rawURL string, out any) error {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to contact Nominatim", "url", rawURL, "error", err)
		return fmt.Errorf("failed to contact geocoding service: %v: %w", err, apperr.ErrUpstreamUnavailable)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Nominatim returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return fmt.Errorf("geocoding service returned status %d: %w", resp.StatusCode, apperr.ErrUpstreamUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode Nominatim response", "error", err)
		return fmt.Errorf("failed to decode geocoding response: %v: %w", err, apperr.ErrUpstreamMalformed)
	}

	return nil
}
