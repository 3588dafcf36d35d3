package geocode

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"weatherdash/internal/providers/nominatim"
)

type mockSearchProvider struct {
	results   []nominatim.SearchAPIResult
	err       error
	calls     int
	lastLimit int
}

func (m *mockSearchProvider) Search(query string, limit int) ([]nominatim.SearchAPIResult, error) {
	m.calls++
	m.lastLimit = limit
	return m.results, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Geocode(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		results   []nominatim.SearchAPIResult
		err       error
		wantErr   error
		wantLen   int
		wantCalls int
	}{
		{
			name:  "results are normalized and order preserved",
			query: "kolhapur",
			results: []nominatim.SearchAPIResult{
				{Lat: "16.7049873", Lon: "74.2432527", DisplayName: "Kolhapur, Maharashtra, India"},
				{Lat: "16.69", Lon: "74.22", DisplayName: "Kolhapur Airport, Maharashtra, India"},
			},
			wantLen:   2,
			wantCalls: 1,
		},
		{
			name:      "empty query skips the upstream call",
			query:     "",
			wantLen:   0,
			wantCalls: 0,
		},
		{
			name:      "whitespace query skips the upstream call",
			query:     "   ",
			wantLen:   0,
			wantCalls: 0,
		},
		{
			name:      "upstream failure maps to ErrUpstream",
			query:     "kolhapur",
			err:       errors.New("connection refused"),
			wantErr:   ErrUpstream,
			wantCalls: 1,
		},
		{
			name:  "unparsable coordinates are skipped",
			query: "kolhapur",
			results: []nominatim.SearchAPIResult{
				{Lat: "not-a-number", Lon: "74.24", DisplayName: "Bad"},
				{Lat: "16.70", Lon: "74.24", DisplayName: "Good"},
			},
			wantLen:   1,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockSearchProvider{results: tt.results, err: tt.err}
			svc := NewServiceWithProvider(testLogger(), provider)

			places, err := svc.Geocode(tt.query)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Geocode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Geocode() error = %v", err)
			}
			if len(places) != tt.wantLen {
				t.Errorf("len(places) = %d, want %d", len(places), tt.wantLen)
			}
			if provider.calls != tt.wantCalls {
				t.Errorf("upstream calls = %d, want %d", provider.calls, tt.wantCalls)
			}
			if tt.wantCalls > 0 && provider.lastLimit != 5 {
				t.Errorf("upstream limit = %d, want 5", provider.lastLimit)
			}
		})
	}
}

func TestService_Geocode_KeepsFullDisplayLabel(t *testing.T) {
	provider := &mockSearchProvider{
		results: []nominatim.SearchAPIResult{
			{Lat: "16.70", Lon: "74.24", Name: "Kolhapur", DisplayName: "Kolhapur, Maharashtra, India"},
		},
	}
	svc := NewServiceWithProvider(testLogger(), provider)

	places, err := svc.Geocode("kolhapur")
	if err != nil {
		t.Fatalf("Geocode() error = %v", err)
	}
	if places[0].Name != "Kolhapur, Maharashtra, India" {
		t.Errorf("Name = %q, want the full display label", places[0].Name)
	}
}

func TestService_GeocodeFirst(t *testing.T) {
	t.Run("uses a limit of one", func(t *testing.T) {
		provider := &mockSearchProvider{
			results: []nominatim.SearchAPIResult{
				{Lat: "16.70", Lon: "74.24", DisplayName: "Kolhapur, Maharashtra, India"},
			},
		}
		svc := NewServiceWithProvider(testLogger(), provider)

		place, err := svc.GeocodeFirst("kolhapur")
		if err != nil {
			t.Fatalf("GeocodeFirst() error = %v", err)
		}
		if place == nil {
			t.Fatal("GeocodeFirst() = nil, want a place")
		}
		if provider.lastLimit != 1 {
			t.Errorf("upstream limit = %d, want 1", provider.lastLimit)
		}
	})

	t.Run("no match returns nil without error", func(t *testing.T) {
		provider := &mockSearchProvider{results: []nominatim.SearchAPIResult{}}
		svc := NewServiceWithProvider(testLogger(), provider)

		place, err := svc.GeocodeFirst("ZZZNotAPlaceZZZ")
		if err != nil {
			t.Fatalf("GeocodeFirst() error = %v", err)
		}
		if place != nil {
			t.Errorf("GeocodeFirst() = %+v, want nil", place)
		}
	})
}
