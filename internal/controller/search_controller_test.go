package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"iqaama_backend/pkg/catalog"
	"iqaama_backend/pkg/history"
	"iqaama_backend/pkg/places"
	"iqaama_backend/pkg/stats"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	if err := catalog.Init(); err != nil {
		t.Fatalf("catalog.Init() = %v", err)
	}

	InitSearchController(places.NewDirectory(), stats.NewTerms())
	InitPropertyController(stats.NewViews())
	InitPlacesController(places.NewDirectory())
	InitHistoryController(history.New(history.NewMemoryStore()))
	InitStatsController(history.NewMemoryStore())

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/search", SearchProperties)
	api.Get("/properties", ListProperties)
	api.Get("/properties/:property_slug", GetPropertyBySlug)
	api.Post("/properties/:id/view", RecordPropertyView)
	api.Get("/properties/:id/contact", GetContactOptions)
	api.Get("/places/search", SearchPlaces)
	api.Get("/history/searches", GetRecentSearches)
	api.Post("/history/locations", SaveRecentLocation)
	return app
}

func decodeBody(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestSearchPropertiesEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/search?location=marina", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d; want 200", resp.StatusCode)
	}

	var body struct {
		Count     int  `json:"count"`
		NoResults bool `json:"no_results"`
	}
	decodeBody(t, resp, &body)
	if body.Count == 0 || body.NoResults {
		t.Fatalf("search for marina found nothing: %+v", body)
	}
}

func TestSearchPropertiesNoMatchesIsStillOK(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/search?location=antarctica", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d; want 200 for zero matches", resp.StatusCode)
	}

	var body struct {
		Count     int  `json:"count"`
		NoResults bool `json:"no_results"`
	}
	decodeBody(t, resp, &body)
	if body.Count != 0 || !body.NoResults {
		t.Fatalf("zero-match search body = %+v; want count 0, no_results true", body)
	}
}

func TestGetPropertyBySlugNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/properties/no-such-listing", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d; want 404", resp.StatusCode)
	}
}

func TestRecordPropertyViewDeduplicates(t *testing.T) {
	app := newTestApp(t)

	var body struct {
		Counted bool  `json:"counted"`
		Views   int64 `json:"views"`
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/api/properties/1/view", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	decodeBody(t, resp, &body)
	if !body.Counted || body.Views != 1 {
		t.Fatalf("first view = %+v; want counted with 1 view", body)
	}

	resp, err = app.Test(httptest.NewRequest("POST", "/api/properties/1/view", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	decodeBody(t, resp, &body)
	if body.Counted || body.Views != 1 {
		t.Fatalf("repeat view = %+v; want not counted, still 1 view", body)
	}
}

func TestSaveRecentLocationValidation(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/history/locations",
		strings.NewReader(`{"place_id":"1","name":"Dubai Marina"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d; want 201", resp.StatusCode)
	}

	req = httptest.NewRequest("POST", "/api/history/locations", strings.NewReader(`{"name":"Nameless"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d; want 400 without place_id", resp.StatusCode)
	}
}
