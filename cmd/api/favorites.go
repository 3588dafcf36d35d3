package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"weatherdash/internal/favorites"
)

// CreateFavoriteInput is the POST /favorites request body. Lat and lon are
// pointers so that zero coordinates still satisfy the required binding.
type CreateFavoriteInput struct {
	Name string   `json:"name" binding:"required"`
	Lat  *float64 `json:"lat" binding:"required"`
	Lon  *float64 `json:"lon" binding:"required"`
}

// handleListFavorites godoc
// @Summary List saved favorite places
// @Description Return all favorites, newest first.
// @Tags favorites
// @Produce json
// @Success 200 {array} favorites.Favorite
// @Failure 500 {object} map[string]string
// @Router /favorites [get]
func (app *App) handleListFavorites(c *gin.Context) {
	list, err := app.favoritesStore.List()
	if err != nil {
		app.logger.Error("failed to list favorites", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// handleCreateFavorite godoc
// @Summary Save a favorite place
// @Description Save a named coordinate. Saving coordinates that already exist returns the existing record unchanged.
// @Tags favorites
// @Accept json
// @Produce json
// @Param favorite body CreateFavoriteInput true "Favorite to save"
// @Success 200 {object} favorites.Favorite
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /favorites [post]
func (app *App) handleCreateFavorite(c *gin.Context) {
	var input CreateFavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, lat and lon are required"})
		return
	}

	favorite, err := app.favoritesStore.Create(input.Name, *input.Lat, *input.Lon)
	if err != nil {
		if errors.Is(err, favorites.ErrInvalidFavorite) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("failed to create favorite", "name", input.Name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save favorite"})
		return
	}

	c.JSON(http.StatusOK, favorite)
}

// handleDeleteFavorite godoc
// @Summary Delete a favorite place
// @Description Remove a favorite by id. Deletion is best-effort and idempotent; an absent id still reports success.
// @Tags favorites
// @Produce json
// @Param id path string true "Favorite id"
// @Success 200 {object} map[string]bool
// @Router /favorites/{id} [delete]
func (app *App) handleDeleteFavorite(c *gin.Context) {
	id := c.Param("id")

	if err := app.favoritesStore.Delete(id); err != nil {
		// Delete has no client-visible error path; log and report success.
		app.logger.Error("failed to delete favorite", "id", id, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
