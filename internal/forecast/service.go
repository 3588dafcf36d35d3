package forecast

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"weatherdash/internal/providers/openmeteo"
	"weatherdash/internal/types"
)

var (
	// ErrInvalidCoordinate indicates lat/lon did not parse as finite numbers.
	// No upstream call is made in that case.
	ErrInvalidCoordinate = errors.New("latitude and longitude must be finite numbers")

	// ErrUpstream indicates the forecast service could not be reached or
	// returned an unusable response.
	ErrUpstream = errors.New("forecast service unavailable")
)

// TimezoneAuto lets the upstream infer local time from the coordinates.
const TimezoneAuto = "auto"

// ForecastProvider fetches current conditions plus the 7-day daily forecast.
type ForecastProvider interface {
	GetForecast(latitude, longitude float64, timezone string) (*types.Forecast, error)
}

// Service fetches weather forecasts by coordinate.
type Service interface {
	Forecast(latitude, longitude float64, timezone string) (*types.Forecast, error)
}

type forecastService struct {
	provider ForecastProvider
	logger   *slog.Logger
}

// NewService creates a forecast service backed by the real Open-Meteo client.
func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(logger, openmeteo.NewClient())
}

// NewServiceWithProvider creates a forecast service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(logger *slog.Logger, provider ForecastProvider) Service {
	return &forecastService{
		provider: provider,
		logger:   logger.With("component", "forecast-service"),
	}
}

func (s *forecastService) Forecast(latitude, longitude float64, timezone string) (*types.Forecast, error) {
	if !isFinite(latitude) || !isFinite(longitude) {
		return nil, ErrInvalidCoordinate
	}
	if timezone == "" {
		timezone = TimezoneAuto
	}

	forecast, err := s.provider.GetForecast(latitude, longitude, timezone)
	if err != nil {
		s.logger.Error("forecast fetch failed",
			"latitude", latitude,
			"longitude", longitude,
			"timezone", timezone,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return forecast, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
