package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	App      AppConfig
	Geocoder GeocoderConfig
	Weather  WeatherConfig
	Database DatabaseConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	ForecastDays int // Number of days to forecast
}

// GeocoderConfig holds settings for the Nominatim geocoding provider.
// ContactEmail is sent in the User-Agent header as the Nominatim usage
// policy requires.
type GeocoderConfig struct {
	BaseURL        string
	ContactEmail   string
	TimeoutSeconds int
}

// WeatherConfig holds settings for the Open-Meteo forecast provider
type WeatherConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// DatabaseConfig holds favorites persistence settings. An empty URL
// selects the in-memory store.
type DatabaseConfig struct {
	URL string // Postgres connection string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// A .env file, when present, feeds AutomaticEnv below
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.weatherpoint")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("app.forecastDays", 5)
	viper.SetDefault("geocoder.baseURL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("geocoder.timeoutSeconds", 10)
	viper.SetDefault("weather.baseURL", "https://api.open-meteo.com/v1/forecast")
	viper.SetDefault("weather.timeoutSeconds", 10)
	viper.SetDefault("database.url", "")

	// Read from environment variables
	viper.SetEnvPrefix("WEATHERPOINT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// GeocoderTimeout returns the geocoder HTTP client timeout
func (c *Config) GeocoderTimeout() time.Duration {
	return time.Duration(c.Geocoder.TimeoutSeconds) * time.Second
}

// WeatherTimeout returns the weather HTTP client timeout
func (c *Config) WeatherTimeout() time.Duration {
	return time.Duration(c.Weather.TimeoutSeconds) * time.Second
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
