package client

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"weatherdash/internal/favorites"
	"weatherdash/internal/types"
)

// Session holds the dashboard's UI state: the query text, suggestion list,
// selected place, current forecast, loading flag, last error, and the
// favorites list. Rendering is derived from this state only.
//
// Suggestion fetches are debounced; forecast fetches carry a sequence token
// so a response from an older request never overwrites a newer one.
type Session struct {
	backend  Backend
	timezone string
	debounce *Debouncer

	mu          sync.Mutex
	query       string
	suggestions []types.Place
	selected    *types.Place
	forecast    *types.Forecast
	loading     bool
	errMsg      string
	favorites   []favorites.Favorite
	fetchSeq    uint64

	onUpdate func()
}

// NewSession creates a session with the standard 350ms suggestion delay.
func NewSession(backend Backend, timezone string) *Session {
	return NewSessionWithDelay(backend, timezone, SuggestionDelay)
}

// NewSessionWithDelay creates a session with a custom suggestion delay.
// This is useful for testing the debounce behavior quickly.
func NewSessionWithDelay(backend Backend, timezone string, delay time.Duration) *Session {
	return &Session{
		backend:  backend,
		timezone: timezone,
		debounce: NewDebouncer(delay),
	}
}

// SetOnUpdate registers a callback invoked whenever asynchronous state
// (suggestions, forecast) changes. The callback runs without the session
// lock held.
func (s *Session) SetOnUpdate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = fn
}

// LoadFavorites fetches the favorites list once at startup.
func (s *Session) LoadFavorites() error {
	list, err := s.backend.ListFavorites()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.favorites = list
	s.mu.Unlock()
	return nil
}

// SetQuery updates the search text. A blank query clears the suggestions
// without any network call; otherwise a suggestion fetch is scheduled and
// any pending fetch is cancelled.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	s.query = query
	if strings.TrimSpace(query) == "" {
		s.suggestions = nil
		s.mu.Unlock()
		s.debounce.Cancel()
		return
	}
	s.mu.Unlock()

	s.debounce.Trigger(func() {
		s.fetchSuggestions(query)
	})
}

func (s *Session) fetchSuggestions(query string) {
	places, err := s.backend.Geocode(query)

	s.mu.Lock()
	// Drop the response if the text changed while the fetch was in flight.
	if s.query != query {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.errMsg = err.Error()
	} else {
		s.errMsg = ""
		s.suggestions = places
	}
	s.mu.Unlock()
	s.notify()
}

// SelectPlace picks a place (from a suggestion or a map click) and fetches
// its forecast. The previous forecast stays visible while loading and on
// failure; only the response belonging to the newest selection is applied.
func (s *Session) SelectPlace(place types.Place) {
	s.mu.Lock()
	p := place
	s.selected = &p
	s.suggestions = nil
	s.loading = true
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	forecast, err := s.backend.Forecast(place.Lat, place.Lon, s.timezone)
	s.applyForecast(seq, forecast, err)
}

// Submit runs the one-shot search: resolve the query to its best match and
// fetch that place's forecast in a single round trip.
func (s *Session) Submit(query string) {
	s.mu.Lock()
	s.loading = true
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	result, err := s.backend.SearchWeather(query, s.timezone)
	if err != nil {
		s.applyForecast(seq, nil, err)
		return
	}

	s.mu.Lock()
	if seq == s.fetchSeq {
		p := result.Place
		s.selected = &p
		s.suggestions = nil
	}
	s.mu.Unlock()
	s.applyForecast(seq, result.Forecast, nil)
}

// ClickMap selects a bare coordinate, with a synthesized place name.
func (s *Session) ClickMap(lat, lon float64) {
	s.SelectPlace(types.Place{
		Name: fmt.Sprintf("Lat %.4f, Lon %.4f", lat, lon),
		Lat:  lat,
		Lon:  lon,
	})
}

func (s *Session) applyForecast(seq uint64, forecast *types.Forecast, err error) {
	s.mu.Lock()
	if seq != s.fetchSeq {
		// A newer request owns the display.
		s.mu.Unlock()
		return
	}
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
	} else {
		s.errMsg = ""
		s.forecast = forecast
	}
	s.mu.Unlock()
	s.notify()
}

// SaveSelected saves the currently selected place as a favorite. The local
// list is only updated once the server confirms.
func (s *Session) SaveSelected() (*favorites.Favorite, error) {
	s.mu.Lock()
	selected := s.selected
	s.mu.Unlock()
	if selected == nil {
		return nil, fmt.Errorf("no place selected")
	}

	favorite, err := s.backend.CreateFavorite(selected.Name, selected.Lat, selected.Lon)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	exists := false
	for _, f := range s.favorites {
		if f.ID == favorite.ID {
			exists = true
			break
		}
	}
	if !exists {
		s.favorites = append([]favorites.Favorite{*favorite}, s.favorites...)
	}
	s.mu.Unlock()
	return favorite, nil
}

// RemoveFavorite deletes a favorite. The local list is only updated once the
// server confirms.
func (s *Session) RemoveFavorite(id string) error {
	if err := s.backend.DeleteFavorite(id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.favorites[:0]
	for _, f := range s.favorites {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	s.favorites = kept
	s.mu.Unlock()
	return nil
}

// Suggestions returns the current suggestion list.
func (s *Session) Suggestions() []types.Place {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Place, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

// Selected returns the currently selected place, or nil.
func (s *Session) Selected() *types.Place {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	p := *s.selected
	return &p
}

// Forecast returns the currently displayed forecast, or nil.
func (s *Session) Forecast() *types.Forecast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forecast
}

// Loading reports whether a forecast request is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ErrorMessage returns the last error message, or "".
func (s *Session) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Favorites returns the current favorites list.
func (s *Session) Favorites() []favorites.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]favorites.Favorite, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// Close drops any pending suggestion fetch.
func (s *Session) Close() {
	s.debounce.Cancel()
}

func (s *Session) notify() {
	s.mu.Lock()
	fn := s.onUpdate
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
