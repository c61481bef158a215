package main

import (
	"fmt"
	"net/http"
	"strconv"

	"weatherpoint/internal/apperr"
	"weatherpoint/internal/favorites"

	"github.com/gin-gonic/gin"
)

// CreateFavoriteInput is the body for creating a favorite location.
// Pointer fields distinguish a missing value from a legitimate zero.
type CreateFavoriteInput struct {
	Name      string   `json:"name" binding:"required" example:"Dallas, TX"`
	Latitude  *float64 `json:"latitude" binding:"required" example:"32.7767"`
	Longitude *float64 `json:"longitude" binding:"required" example:"-96.7970"`
}

// UpdateFavoriteInput is the body for a partial update; omitted fields
// are left unchanged
type UpdateFavoriteInput struct {
	Name      *string  `json:"name" example:"Dallas, TX"`
	Latitude  *float64 `json:"latitude" example:"32.7767"`
	Longitude *float64 `json:"longitude" example:"-96.7970"`
}

func favoriteID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("favorite id must be an integer: %w", apperr.ErrInvalidInput)
	}
	return id, nil
}

// handleCreateFavorite godoc
// @Summary Create a favorite location
// @Tags favorites
// @Accept json
// @Produce json
// @Param favorite body CreateFavoriteInput true "Favorite to create"
// @Success 201 {object} favorites.FavoriteLocation
// @Failure 400 {object} map[string]string
// @Router /locations [post]
func (app *App) handleCreateFavorite(c *gin.Context) {
	var input CreateFavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fav, err := app.favorites.Create(input.Name, *input.Latitude, *input.Longitude)
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fav)
}

// handleListFavorites godoc
// @Summary List favorite locations
// @Tags favorites
// @Produce json
// @Success 200 {array} favorites.FavoriteLocation
// @Router /locations [get]
func (app *App) handleListFavorites(c *gin.Context) {
	list, err := app.favorites.List()
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// handleGetFavorite godoc
// @Summary Get a favorite location by id
// @Tags favorites
// @Produce json
// @Param id path int true "Favorite id"
// @Success 200 {object} favorites.FavoriteLocation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /locations/{id} [get]
func (app *App) handleGetFavorite(c *gin.Context) {
	id, err := favoriteID(c)
	if err != nil {
		app.respondError(c, err)
		return
	}

	fav, err := app.favorites.Get(id)
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fav)
}

// handleUpdateFavorite godoc
// @Summary Update a favorite location
// @Description Partial update; omitted fields keep their current values
// @Tags favorites
// @Accept json
// @Produce json
// @Param id path int true "Favorite id"
// @Param favorite body UpdateFavoriteInput true "Fields to update"
// @Success 200 {object} favorites.FavoriteLocation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /locations/{id} [put]
func (app *App) handleUpdateFavorite(c *gin.Context) {
	id, err := favoriteID(c)
	if err != nil {
		app.respondError(c, err)
		return
	}

	var input UpdateFavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fav, err := app.favorites.Update(id, favorites.UpdateParams{
		Name:      input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fav)
}

// handleDeleteFavorite godoc
// @Summary Delete a favorite location
// @Tags favorites
// @Param id path int true "Favorite id"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /locations/{id} [delete]
func (app *App) handleDeleteFavorite(c *gin.Context) {
	id, err := favoriteID(c)
	if err != nil {
		app.respondError(c, err)
		return
	}

	if err := app.favorites.Delete(id); err != nil {
		app.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
