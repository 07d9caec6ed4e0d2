package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/promarket/internal/platform/auth"
	applog "github.com/janisto/promarket/internal/platform/logging"
	appmiddleware "github.com/janisto/promarket/internal/platform/middleware"
	"github.com/janisto/promarket/internal/platform/respond"
	catalogsvc "github.com/janisto/promarket/internal/service/catalog"
	directorysvc "github.com/janisto/promarket/internal/service/directory"
	locationsvc "github.com/janisto/promarket/internal/service/location"
	reviewsvc "github.com/janisto/promarket/internal/service/review"
	rostersvc "github.com/janisto/promarket/internal/service/roster"
	searchsvc "github.com/janisto/promarket/internal/service/search"
)

func newTestRouter() chi.Router {
	cat := catalogsvc.NewMockCatalogService()
	ros := rostersvc.NewMockRosterService(cat)
	rev := reviewsvc.NewMockReviewService()
	dir := directorysvc.NewMockDirectoryService()
	loc := locationsvc.NewMockLocationService()

	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("RoutesTest", "test"))
	Register(api, &auth.MockVerifier{User: auth.TestUser()}, Services{
		Catalog:   cat,
		Roster:    ros,
		Reviews:   rev,
		Directory: dir,
		Locations: loc,
		Engine:    searchsvc.NewEngine(ros, dir, rev),
	})
	return router
}

func TestRegisterRoutesProfessions(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/professions", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-professions")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRegisterRoutesStates(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/locations/states", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-states")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRegisterRoutesSearchIsPublic(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/search/professionals?professionId=1", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-search")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRegisterRoutesProtected(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/me/professions", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-me")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
