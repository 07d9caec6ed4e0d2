package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/promarket/internal/http/v1/locations"
	"github.com/janisto/promarket/internal/http/v1/offerings"
	"github.com/janisto/promarket/internal/http/v1/professions"
	"github.com/janisto/promarket/internal/http/v1/profile"
	"github.com/janisto/promarket/internal/http/v1/reviews"
	searchhandler "github.com/janisto/promarket/internal/http/v1/search"
	"github.com/janisto/promarket/internal/platform/auth"
	catalogsvc "github.com/janisto/promarket/internal/service/catalog"
	directorysvc "github.com/janisto/promarket/internal/service/directory"
	locationsvc "github.com/janisto/promarket/internal/service/location"
	reviewsvc "github.com/janisto/promarket/internal/service/review"
	rostersvc "github.com/janisto/promarket/internal/service/roster"
	searchsvc "github.com/janisto/promarket/internal/service/search"
)

// Services bundles the domain services the v1 API is built on.
type Services struct {
	Catalog   catalogsvc.Service
	Roster    rostersvc.Service
	Reviews   reviewsvc.Service
	Directory directorysvc.Service
	Locations locationsvc.Service
	Engine    *searchsvc.Engine
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, verifier auth.Verifier, svcs Services) {
	prefix := apiPrefix(api)

	// Apply auth middleware for protected endpoints
	api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))

	professions.Register(api, svcs.Catalog, prefix)
	offerings.Register(api, svcs.Roster, svcs.Catalog, svcs.Reviews, prefix)
	reviews.Register(api, svcs.Reviews, prefix)
	searchhandler.Register(api, svcs.Engine)
	profile.Register(api, svcs.Directory, svcs.Locations)
	locations.Register(api, svcs.Locations)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
