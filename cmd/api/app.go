package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"weatherdash/internal/config"
	"weatherdash/internal/favorites"
	"weatherdash/internal/forecast"
	"weatherdash/internal/geocode"
	"weatherdash/internal/search"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	geocodeService  geocode.Service
	forecastService forecast.Service
	searchService   search.Service
	favoritesStore  favorites.Store
}

// NewApp creates a new application with real gateways and the given
// database handle
func NewApp(cfg *config.Config, logger *slog.Logger, db *gorm.DB) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	geocodeSvc := geocode.NewService(logger)
	forecastSvc := forecast.NewService(logger)

	return NewAppWithServices(
		logger,
		geocodeSvc,
		forecastSvc,
		search.NewService(logger, geocodeSvc, forecastSvc),
		favorites.NewStore(db, logger),
	)
}

// NewAppWithServices creates a new application with custom services.
// This is useful for testing with mock gateways and stores.
func NewAppWithServices(
	logger *slog.Logger,
	geocodeService geocode.Service,
	forecastService forecast.Service,
	searchService search.Service,
	favoritesStore favorites.Store,
) *App {
	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:          router,
		logger:          logger,
		geocodeService:  geocodeService,
		forecastService: forecastService,
		searchService:   searchService,
		favoritesStore:  favoritesStore,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
