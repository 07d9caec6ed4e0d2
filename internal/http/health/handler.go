// Package health exposes the liveness endpoint.
package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Data models the payload for the health endpoint.
type Data struct {
	Status string `json:"status" doc:"Health status" example:"healthy"`
}

// Output for GET /health
type Output struct {
	Body Data
}

// Register wires the health route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Liveness probe for load balancers and orchestration.",
		Tags:        []string{"Health"},
	}, func(_ context.Context, _ *struct{}) (*Output, error) {
		return &Output{Body: Data{Status: "healthy"}}, nil
	})
}
