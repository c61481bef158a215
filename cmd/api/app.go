package main

import (
	"errors"
	"log/slog"
	"net/http"

	"weatherpoint/internal/apperr"
	"weatherpoint/internal/config"
	"weatherpoint/internal/favorites"
	"weatherpoint/internal/location"
	"weatherpoint/internal/providers/openmeteo"
	"weatherpoint/internal/providers/openstreetmap"
	"weatherpoint/internal/resolve"
	"weatherpoint/internal/weather"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	cfg             *config.Config
	locationService location.Service
	weatherService  weather.Service
	resolver        resolve.Service
	favorites       favorites.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))

	locationService := location.NewService(openstreetmap.ClientConfig{
		BaseURL:      cfg.Geocoder.BaseURL,
		ContactEmail: cfg.Geocoder.ContactEmail,
		Timeout:      cfg.GeocoderTimeout(),
	}, logger)

	weatherService := weather.NewService(openmeteo.ClientConfig{
		BaseURL: cfg.Weather.BaseURL,
		Timeout: cfg.WeatherTimeout(),
	}, logger)

	repo, err := newFavoritesRepository(cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:          router,
		logger:          logger,
		cfg:             cfg,
		locationService: locationService,
		weatherService:  weatherService,
		resolver:        resolve.NewService(locationService, weatherService, cfg.App.ForecastDays, logger),
		favorites:       favorites.NewService(repo, logger),
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// newFavoritesRepository picks the persistence backend: Postgres when a
// database URL is configured, an in-memory store otherwise.
func newFavoritesRepository(cfg *config.Config, logger *slog.Logger) (favorites.Repository, error) {
	if cfg.Database.URL == "" {
		logger.Warn("no database URL configured, favorites are not persisted across restarts")
		return favorites.NewMemoryRepository(), nil
	}
	return favorites.NewPostgresRepository(cfg.Database.URL)
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// statusForError maps an error kind to the HTTP status the handlers
// respond with.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrUpstreamUnavailable), errors.Is(err, apperr.ErrUpstreamMalformed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (app *App) respondError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		app.logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
