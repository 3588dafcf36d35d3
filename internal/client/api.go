// Package client implements the dashboard client: an HTTP client for the
// weatherdash API plus the interactive session state behind the terminal UI.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"weatherdash/internal/favorites"
	"weatherdash/internal/search"
	"weatherdash/internal/types"
)

// Backend is the API surface the session talks to. It matches the six
// endpoints exposed by cmd/api.
type Backend interface {
	Geocode(query string) ([]types.Place, error)
	Forecast(lat, lon float64, timezone string) (*types.Forecast, error)
	SearchWeather(query, timezone string) (*search.Result, error)
	ListFavorites() ([]favorites.Favorite, error)
	CreateFavorite(name string, lat, lon float64) (*favorites.Favorite, error)
	DeleteFavorite(id string) error
}

// API is an HTTP client for the weatherdash API.
type API struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPI creates a client for the API served at baseURL, e.g.
// "http://localhost:8080".
func NewAPI(baseURL string) *API {
	return &API{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (a *API) Geocode(query string) ([]types.Place, error) {
	params := url.Values{"q": {query}}
	var places []types.Place
	if err := a.getJSON("/api/geocode", params, &places); err != nil {
		return nil, err
	}
	return places, nil
}

func (a *API) Forecast(lat, lon float64, timezone string) (*types.Forecast, error) {
	params := url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}
	if timezone != "" {
		params.Set("tz", timezone)
	}
	var forecast types.Forecast
	if err := a.getJSON("/api/forecast", params, &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

func (a *API) SearchWeather(query, timezone string) (*search.Result, error) {
	params := url.Values{"q": {query}}
	if timezone != "" {
		params.Set("tz", timezone)
	}
	var result search.Result
	if err := a.getJSON("/api/searchWeather", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *API) ListFavorites() ([]favorites.Favorite, error) {
	var list []favorites.Favorite
	if err := a.getJSON("/api/favorites", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (a *API) CreateFavorite(name string, lat, lon float64) (*favorites.Favorite, error) {
	body, err := json.Marshal(map[string]any{"name": name, "lat": lat, "lon": lon})
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Post(a.baseURL+"/api/favorites", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to save favorite: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var favorite favorites.Favorite
	if err := json.NewDecoder(resp.Body).Decode(&favorite); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &favorite, nil
}

func (a *API) DeleteFavorite(id string) error {
	req, err := http.NewRequest(http.MethodDelete, a.baseURL+"/api/favorites/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}

func (a *API) getJSON(path string, params url.Values, out any) error {
	u := a.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	resp, err := a.httpClient.Get(u)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiError extracts the {error} message the API attaches to failures.
func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("api returned status %d: %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("api returned status %d", resp.StatusCode)
}
