package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	_ "weatherdash/internal/types" // imported for swagger type definitions
)

// handleGeocode godoc
// @Summary Search places by name
// @Description Resolve a free-text query to up to five places ranked by upstream relevance. A blank query returns an empty list.
// @Tags geocode
// @Produce json
// @Param q query string false "Free-text place query" example(kolhapur)
// @Success 200 {array} types.Place
// @Failure 500 {object} map[string]string
// @Router /geocode [get]
func (app *App) handleGeocode(c *gin.Context) {
	query := c.Query("q")

	places, err := app.geocodeService.Geocode(query)
	if err != nil {
		app.logger.Error("geocode request failed", "q", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search places"})
		return
	}

	c.JSON(http.StatusOK, places)
}
