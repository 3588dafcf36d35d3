package nominatim

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Search(t *testing.T) {
	var gotQuery, gotLimit, gotAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotLimit = r.URL.Query().Get("limit")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"place_id":1,"lat":"16.7049873","lon":"74.2432527","name":"Kolhapur","display_name":"Kolhapur, Maharashtra, India"},
			{"place_id":2,"lat":"16.69","lon":"74.22","name":"Kolhapur Airport","display_name":"Kolhapur Airport, Maharashtra, India"}
		]`))
	}))
	defer ts.Close()

	client := NewClient()
	client.baseURL = ts.URL

	results, err := client.Search("kolhapur", 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotQuery != "kolhapur" {
		t.Errorf("upstream q = %q, want %q", gotQuery, "kolhapur")
	}
	if gotLimit != "5" {
		t.Errorf("upstream limit = %q, want %q", gotLimit, "5")
	}
	if gotAgent == "" {
		t.Error("request was sent without a User-Agent header")
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].DisplayName != "Kolhapur, Maharashtra, India" {
		t.Errorf("DisplayName = %q, want full display label", results[0].DisplayName)
	}
	if results[0].Lat != "16.7049873" {
		t.Errorf("Lat = %q, want wire string %q", results[0].Lat, "16.7049873")
	}
}

func TestClient_Search_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bandwidth limit exceeded", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewClient()
	client.baseURL = ts.URL

	if _, err := client.Search("kolhapur", 5); err == nil {
		t.Fatal("Search() on a 503 upstream returned nil error")
	}
}

func TestClient_Search_MalformedPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer ts.Close()

	client := NewClient()
	client.baseURL = ts.URL

	if _, err := client.Search("kolhapur", 5); err == nil {
		t.Fatal("Search() on a malformed payload returned nil error")
	}
}
