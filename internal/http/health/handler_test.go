package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
)

func TestHealthEndpoint(t *testing.T) {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("HealthTest", "test"))
	Register(api)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Accept", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.Code)
	}

	var d Data
	if err := json.Unmarshal(resp.Body.Bytes(), &d); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if d.Status != "healthy" {
		t.Fatalf("expected status 'healthy', got %s", d.Status)
	}
}
