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

	api := app.router.Group("/api")
	{
		api.GET("/geocode", app.handleGeocode)
		api.GET("/forecast", app.handleForecast)
		api.GET("/searchWeather", app.handleSearchWeather)
		api.GET("/favorites", app.handleListFavorites)
		api.POST("/favorites", app.handleCreateFavorite)
		api.DELETE("/favorites/:id", app.handleDeleteFavorite)
	}

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
