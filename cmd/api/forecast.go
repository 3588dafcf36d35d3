package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"weatherdash/internal/forecast"
)

// handleForecast godoc
// @Summary Get a 7-day forecast by coordinates
// @Description Fetch current conditions and the 7-day daily forecast for a coordinate pair. The payload is forwarded from the upstream forecast service unmodified.
// @Tags forecast
// @Produce json
// @Param lat query number true "Latitude in decimal degrees" example(16.7049873)
// @Param lon query number true "Longitude in decimal degrees" example(74.2432527)
// @Param tz query string false "IANA timezone; defaults to auto" example(Asia/Kolkata)
// @Success 200 {object} types.Forecast
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /forecast [get]
func (app *App) handleForecast(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must be valid numbers"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must be valid numbers"})
		return
	}

	result, err := app.forecastService.Forecast(lat, lon, c.Query("tz"))
	if err != nil {
		if errors.Is(err, forecast.ErrInvalidCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("forecast request failed", "lat", lat, "lon", lon, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch forecast"})
		return
	}

	c.JSON(http.StatusOK, result)
}
