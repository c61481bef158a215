package openmeteo

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weatherpoint/internal/apperr"
)

// API Docs: https://open-meteo.com/en/docs
// Sample requests:
//   https://api.open-meteo.com/v1/forecast?latitude=48.8566&longitude=2.3522&current_weather=true&timezone=auto
//   https://api.open-meteo.com/v1/forecast?latitude=48.8566&longitude=2.3522&daily=temperature_2m_max,temperature_2m_min,weathercode&timezone=auto&forecast_days=5
const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

	// MaxForecastDays is the longest forecast Open-Meteo serves.
	MaxForecastDays = 16
)

// ClientConfig carries the provider settings.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
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
		logger:     logger.With("component", "openmeteo-client"),
	}
}

// GetCurrentWeather fetches the current conditions for a coordinate pair.
func (c *Client) GetCurrentWeather(latitude, longitude float64) (*CurrentWeatherAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current_weather", "true")
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching current weather",
		"latitude", latitude,
		"longitude", longitude,
		"url", u.String(),
	)

	var apiResp CurrentWeatherAPIResponse
	if err := c.getJSON(u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// GetDailyForecast fetches a daily min/max/weather-code forecast for the
// given number of days.
func (c *Client) GetDailyForecast(latitude, longitude float64, forecastDays int) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,weathercode")
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching daily forecast",
		"latitude", latitude,
		"longitude", longitude,
		"forecast_days", forecastDays,
		"url", u.String(),
	)

	var apiResp ForecastAPIResponse
	if err := c.getJSON(u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

func (c *Client) getJSON(rawURL string, out any) error {
	resp, err := c.httpClient.Get(rawURL)
	if err != nil {
		c.logger.Error("failed to contact Open-Meteo", "url", rawURL, "error", err)
		return fmt.Errorf("failed to contact weather service: %v: %w", err, apperr.ErrUpstreamUnavailable)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Open-Meteo returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return fmt.Errorf("weather service returned status %d: %w", resp.StatusCode, apperr.ErrUpstreamUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode Open-Meteo response", "error", err)
		return fmt.Errorf("failed to decode weather response: %v: %w", err, apperr.ErrUpstreamMalformed)
	}

	return nil
}
