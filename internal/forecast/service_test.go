package forecast

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"weatherdash/internal/types"
)

type mockForecastProvider struct {
	forecast *types.Forecast
	err      error
	calls    int
	lastTz   string
}

func (m *mockForecastProvider) GetForecast(latitude, longitude float64, timezone string) (*types.Forecast, error) {
	m.calls++
	m.lastTz = timezone
	return m.forecast, m.err
}

func sevenDayForecast() *types.Forecast {
	return &types.Forecast{
		Daily: types.Daily{
			Time: []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06", "2025-06-07"},
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Forecast(t *testing.T) {
	tests := []struct {
		name      string
		lat       float64
		lon       float64
		tz        string
		err       error
		wantErr   error
		wantTz    string
		wantCalls int
	}{
		{
			name:      "valid coordinates pass through",
			lat:       16.7049873,
			lon:       74.2432527,
			tz:        "Asia/Kolkata",
			wantTz:    "Asia/Kolkata",
			wantCalls: 1,
		},
		{
			name:      "missing timezone defaults to auto",
			lat:       16.7,
			lon:       74.24,
			tz:        "",
			wantTz:    "auto",
			wantCalls: 1,
		},
		{
			name:      "NaN latitude fails before any upstream call",
			lat:       math.NaN(),
			lon:       74.24,
			wantErr:   ErrInvalidCoordinate,
			wantCalls: 0,
		},
		{
			name:      "infinite longitude fails before any upstream call",
			lat:       16.7,
			lon:       math.Inf(1),
			wantErr:   ErrInvalidCoordinate,
			wantCalls: 0,
		},
		{
			name:      "upstream failure maps to ErrUpstream",
			lat:       16.7,
			lon:       74.24,
			err:       errors.New("connection refused"),
			wantErr:   ErrUpstream,
			wantCalls: 1,
		},
		{
			// Out-of-range but numeric values are upstream-defined, not a
			// local validation error.
			name:      "out of range latitude still reaches upstream",
			lat:       91,
			lon:       0,
			wantTz:    "auto",
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockForecastProvider{forecast: sevenDayForecast(), err: tt.err}
			svc := NewServiceWithProvider(testLogger(), provider)

			forecast, err := svc.Forecast(tt.lat, tt.lon, tt.tz)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Forecast() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Forecast() error = %v", err)
				}
				if len(forecast.Daily.Time) != 7 {
					t.Errorf("len(Daily.Time) = %d, want 7", len(forecast.Daily.Time))
				}
				if provider.lastTz != tt.wantTz {
					t.Errorf("upstream timezone = %q, want %q", provider.lastTz, tt.wantTz)
				}
			}
			if provider.calls != tt.wantCalls {
				t.Errorf("upstream calls = %d, want %d", provider.calls, tt.wantCalls)
			}
		})
	}
}

func TestService_Forecast_NoCaching(t *testing.T) {
	provider := &mockForecastProvider{forecast: sevenDayForecast()}
	svc := NewServiceWithProvider(testLogger(), provider)

	for i := 0; i < 2; i++ {
		if _, err := svc.Forecast(16.7, 74.24, "auto"); err != nil {
			t.Fatalf("Forecast() call %d error = %v", i+1, err)
		}
	}
	if provider.calls != 2 {
		t.Errorf("identical requests reached upstream %d times, want 2 (no caching)", provider.calls)
	}
}
