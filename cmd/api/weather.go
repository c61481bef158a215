package main

import (
	"net/http"

	"weatherpoint/internal/location"
	"weatherpoint/internal/types"
	"weatherpoint/internal/weather"

	"github.com/gin-gonic/gin"
)

// LocationInput defines the query parameter shared by the lookup endpoints
type LocationInput struct {
	Loc string `form:"loc" binding:"required"` // Location as "lat,lon" or free-form address
}

// CurrentWeatherResponse is the /weather payload
type CurrentWeatherResponse struct {
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Current   weather.Snapshot `json:"current"`
}

// ForecastResponse is the /forecast payload
type ForecastResponse struct {
	Latitude  float64               `json:"latitude"`
	Longitude float64               `json:"longitude"`
	Forecast  []weather.ForecastDay `json:"forecast"`
}

// resolveCoords turns the loc query parameter into coordinates, forward
// geocoding when the input is address text. Lookup endpoints that do not
// need a display name use this instead of the full pipeline.
func (app *App) resolveCoords(loc string) (types.Coords, error) {
	query, err := location.Normalize(loc)
	if err != nil {
		return types.Coords{}, err
	}
	if query.Coords != nil {
		return *query.Coords, nil
	}

	resolved, err := app.locationService.Forward(query.Address)
	if err != nil {
		return types.Coords{}, err
	}
	return resolved.Coordinates, nil
}

// handleCurrentWeather godoc
// @Summary Current weather
// @Description Get current weather by location ("lat,lon" or free-form address)
// @Tags weather
// @Produce json
// @Param loc query string true "Location as 'lat,lon' or address" example(48.8566,2.3522)
// @Success 200 {object} CurrentWeatherResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /weather [get]
func (app *App) handleCurrentWeather(c *gin.Context) {
	var input LocationInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coords, err := app.resolveCoords(input.Loc)
	if err != nil {
		app.respondError(c, err)
		return
	}

	snapshot, err := app.weatherService.Current(coords.Latitude, coords.Longitude)
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CurrentWeatherResponse{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Current:   *snapshot,
	})
}

// handleForecast godoc
// @Summary Daily forecast
// @Description Get a daily weather forecast by location ("lat,lon" or free-form address)
// @Tags weather
// @Produce json
// @Param loc query string true "Location as 'lat,lon' or address" example(Dallas, TX)
// @Success 200 {object} ForecastResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /forecast [get]
func (app *App) handleForecast(c *gin.Context) {
	var input LocationInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coords, err := app.resolveCoords(input.Loc)
	if err != nil {
		app.respondError(c, err)
		return
	}

	forecast, err := app.weatherService.Forecast(coords.Latitude, coords.Longitude, app.cfg.App.ForecastDays)
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ForecastResponse{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Forecast:  forecast,
	})
}

// handleResolve godoc
// @Summary Resolve a location to weather
// @Description Resolve a location to a named coordinate pair plus current weather and forecast in one call
// @Tags weather
// @Produce json
// @Param loc query string true "Location as 'lat,lon' or address" example(48.8566,2.3522)
// @Success 200 {object} resolve.Result
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /resolve [get]
func (app *App) handleResolve(c *gin.Context) {
	var input LocationInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := app.resolver.Resolve(input.Loc)
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
