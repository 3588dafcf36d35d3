package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"weatherdash/internal/search"
)

// handleSearchWeather godoc
// @Summary Search a place and fetch its forecast in one call
// @Description Resolve the query to its single best place match and return that place together with its 7-day forecast.
// @Tags search
// @Produce json
// @Param q query string true "Free-text place query" example(kolhapur)
// @Param tz query string false "IANA timezone; defaults to auto" example(Asia/Kolkata)
// @Success 200 {object} search.Result
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /searchWeather [get]
func (app *App) handleSearchWeather(c *gin.Context) {
	query := c.Query("q")

	result, err := app.searchService.Search(query, c.Query("tz"))
	if err != nil {
		switch {
		case errors.Is(err, search.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing q"})
		case errors.Is(err, search.ErrPlaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		default:
			app.logger.Error("search request failed", "q", query, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search weather"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
