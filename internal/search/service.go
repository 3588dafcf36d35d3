package search

import (
	"errors"
	"log/slog"
	"strings"

	"weatherdash/internal/forecast"
	"weatherdash/internal/geocode"
	"weatherdash/internal/types"
)

var (
	// ErrEmptyQuery indicates the search query was missing or blank.
	ErrEmptyQuery = errors.New("query must not be empty")

	// ErrPlaceNotFound indicates geocoding resolved the query to nothing.
	ErrPlaceNotFound = errors.New("place not found")
)

// Result pairs the resolved place with its forecast.
type Result struct {
	Place    types.Place     `json:"place"`
	Forecast *types.Forecast `json:"forecast"`
}

// Service resolves a free-text query straight to a forecast in one round trip.
type Service interface {
	Search(query, timezone string) (*Result, error)
}

type searchService struct {
	geocoder   geocode.Service
	forecaster forecast.Service
	logger     *slog.Logger
}

// NewService creates a search service composing the given gateways.
func NewService(logger *slog.Logger, geocoder geocode.Service, forecaster forecast.Service) Service {
	return &searchService{
		geocoder:   geocoder,
		forecaster: forecaster,
		logger:     logger.With("component", "search-service"),
	}
}

// Search geocodes the query to its single best match, then fetches that
// place's forecast. A geocoding failure aborts the composition; the forecast
// call is never attempted on a miss. Nothing is cached, so repeating the same
// query re-issues both upstream calls.
func (s *searchService) Search(query, timezone string) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	place, err := s.geocoder.GeocodeFirst(query)
	if err != nil {
		return nil, err
	}
	if place == nil {
		s.logger.Info("search query matched no place", "query", query)
		return nil, ErrPlaceNotFound
	}

	fc, err := s.forecaster.Forecast(place.Lat, place.Lon, timezone)
	if err != nil {
		return nil, err
	}

	return &Result{Place: *place, Forecast: fc}, nil
}
