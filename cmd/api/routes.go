package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Weather lookup endpoints
	app.router.GET("/weather", app.handleCurrentWeather)
	app.router.GET("/forecast", app.handleForecast)
	app.router.GET("/resolve", app.handleResolve)

	// Favorite location endpoints
	app.router.POST("/locations", app.handleCreateFavorite)
	app.router.GET("/locations", app.handleListFavorites)
	app.router.GET("/locations/:id", app.handleGetFavorite)
	app.router.PUT("/locations/:id", app.handleUpdateFavorite)
	app.router.DELETE("/locations/:id", app.handleDeleteFavorite)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
