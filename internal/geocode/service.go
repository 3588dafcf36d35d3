package geocode

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"weatherdash/internal/providers/nominatim"
	"weatherdash/internal/types"
)

// ErrUpstream indicates the place-search service could not be reached or
// returned an unusable response.
var ErrUpstream = errors.New("geocoding service unavailable")

// Interactive suggestions ask for up to five ranked results; the search
// orchestrator asks for exactly one.
const suggestionLimit = 5

// SearchProvider fetches ranked place-search results for a free-text query.
type SearchProvider interface {
	Search(query string, limit int) ([]nominatim.SearchAPIResult, error)
}

// Service resolves free-text queries to geographic places.
type Service interface {
	// Geocode returns up to five places ranked by upstream relevance.
	Geocode(query string) ([]types.Place, error)
	// GeocodeFirst returns the single best match, or nil when nothing matches.
	GeocodeFirst(query string) (*types.Place, error)
}

type geocodeService struct {
	provider SearchProvider
	logger   *slog.Logger
}

// NewService creates a geocoding service backed by the real Nominatim client.
func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(logger, nominatim.NewClient())
}

// NewServiceWithProvider creates a geocoding service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(logger *slog.Logger, provider SearchProvider) Service {
	return &geocodeService{
		provider: provider,
		logger:   logger.With("component", "geocode-service"),
	}
}

func (s *geocodeService) Geocode(query string) ([]types.Place, error) {
	return s.geocode(query, suggestionLimit)
}

func (s *geocodeService) GeocodeFirst(query string) (*types.Place, error) {
	places, err := s.geocode(query, 1)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, nil
	}
	return &places[0], nil
}

func (s *geocodeService) geocode(query string, limit int) ([]types.Place, error) {
	// A blank query never reaches the upstream service.
	if strings.TrimSpace(query) == "" {
		return []types.Place{}, nil
	}

	results, err := s.provider.Search(query, limit)
	if err != nil {
		s.logger.Error("place search failed", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	places := make([]types.Place, 0, len(results))
	for _, r := range results {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			s.logger.Warn("skipping result with unparsable latitude", "lat", r.Lat, "display_name", r.DisplayName)
			continue
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			s.logger.Warn("skipping result with unparsable longitude", "lon", r.Lon, "display_name", r.DisplayName)
			continue
		}
		places = append(places, types.Place{
			Name: r.DisplayName,
			Lat:  lat,
			Lon:  lon,
		})
	}

	return places, nil
}
