package search

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"weatherdash/internal/forecast"
	"weatherdash/internal/geocode"
	"weatherdash/internal/types"
)

type mockGeocoder struct {
	place *types.Place
	err   error
	calls int
}

func (m *mockGeocoder) Geocode(query string) ([]types.Place, error) {
	if m.place == nil {
		return []types.Place{}, m.err
	}
	return []types.Place{*m.place}, m.err
}

func (m *mockGeocoder) GeocodeFirst(query string) (*types.Place, error) {
	m.calls++
	return m.place, m.err
}

type mockForecaster struct {
	forecast *types.Forecast
	err      error
	calls    int
	lastLat  float64
	lastLon  float64
	lastTz   string
}

func (m *mockForecaster) Forecast(latitude, longitude float64, timezone string) (*types.Forecast, error) {
	m.calls++
	m.lastLat = latitude
	m.lastLon = longitude
	m.lastTz = timezone
	return m.forecast, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Search(t *testing.T) {
	kolhapur := &types.Place{Name: "Kolhapur, Maharashtra, India", Lat: 16.7049873, Lon: 74.2432527}

	t.Run("resolved place feeds the forecast call", func(t *testing.T) {
		geocoder := &mockGeocoder{place: kolhapur}
		forecaster := &mockForecaster{forecast: &types.Forecast{Timezone: "Asia/Kolkata"}}
		svc := NewService(testLogger(), geocoder, forecaster)

		result, err := svc.Search("kolhapur", "Asia/Kolkata")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if result.Place != *kolhapur {
			t.Errorf("Place = %+v, want %+v", result.Place, *kolhapur)
		}
		if forecaster.lastLat != kolhapur.Lat || forecaster.lastLon != kolhapur.Lon {
			t.Errorf("forecast called with (%v, %v), want place coordinates", forecaster.lastLat, forecaster.lastLon)
		}
		if forecaster.lastTz != "Asia/Kolkata" {
			t.Errorf("forecast timezone = %q, want %q", forecaster.lastTz, "Asia/Kolkata")
		}
	})

	t.Run("blank query is a validation error", func(t *testing.T) {
		geocoder := &mockGeocoder{place: kolhapur}
		forecaster := &mockForecaster{}
		svc := NewService(testLogger(), geocoder, forecaster)

		if _, err := svc.Search("   ", ""); !errors.Is(err, ErrEmptyQuery) {
			t.Fatalf("Search() error = %v, want ErrEmptyQuery", err)
		}
		if geocoder.calls != 0 || forecaster.calls != 0 {
			t.Error("blank query should not reach any gateway")
		}
	})

	t.Run("no geocoding match skips the forecast call", func(t *testing.T) {
		geocoder := &mockGeocoder{place: nil}
		forecaster := &mockForecaster{}
		svc := NewService(testLogger(), geocoder, forecaster)

		if _, err := svc.Search("ZZZNotAPlaceZZZ", ""); !errors.Is(err, ErrPlaceNotFound) {
			t.Fatalf("Search() error = %v, want ErrPlaceNotFound", err)
		}
		if forecaster.calls != 0 {
			t.Errorf("forecast calls = %d, want 0 after a miss", forecaster.calls)
		}
	})

	t.Run("geocoding failure aborts the composition", func(t *testing.T) {
		geocoder := &mockGeocoder{err: geocode.ErrUpstream}
		forecaster := &mockForecaster{}
		svc := NewService(testLogger(), geocoder, forecaster)

		if _, err := svc.Search("kolhapur", ""); !errors.Is(err, geocode.ErrUpstream) {
			t.Fatalf("Search() error = %v, want geocode.ErrUpstream", err)
		}
		if forecaster.calls != 0 {
			t.Errorf("forecast calls = %d, want 0 after a geocoding failure", forecaster.calls)
		}
	})

	t.Run("forecast failure propagates", func(t *testing.T) {
		geocoder := &mockGeocoder{place: kolhapur}
		forecaster := &mockForecaster{err: forecast.ErrUpstream}
		svc := NewService(testLogger(), geocoder, forecaster)

		if _, err := svc.Search("kolhapur", ""); !errors.Is(err, forecast.ErrUpstream) {
			t.Fatalf("Search() error = %v, want forecast.ErrUpstream", err)
		}
	})
}
