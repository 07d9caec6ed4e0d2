// Package locations serves the state and city reference data.
package locations

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	locationsvc "github.com/janisto/promarket/internal/service/location"
)

// Register wires location routes into the provided API router.
func Register(api huma.API, svc locationsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-states",
		Method:      http.MethodGet,
		Path:        "/locations/states",
		Summary:     "List states",
		Description: "Returns the fixed table of federative units, ordered by UF.",
		Tags:        []string{"Locations"},
	}, func(_ context.Context, _ *StatesListInput) (*StatesListOutput, error) {
		table := locationsvc.States()
		states := make([]State, 0, len(table))
		for _, s := range table {
			states = append(states, State{UF: s.UF, Name: s.Name})
		}
		return &StatesListOutput{
			Body: StatesData{States: states},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-cities",
		Method:      http.MethodGet,
		Path:        "/locations/cities/{uf}",
		Summary:     "List cities of a state",
		Description: "Returns the state's cities ordered by name.",
		Tags:        []string{"Locations"},
	}, func(ctx context.Context, input *CitiesListInput) (*CitiesListOutput, error) {
		cities, err := svc.CitiesForState(ctx, input.UF)
		if err != nil {
			if errors.Is(err, locationsvc.ErrNotFound) {
				return nil, huma.Error404NotFound("state not found")
			}
			return nil, huma.Error500InternalServerError("internal error")
		}

		out := make([]City, 0, len(cities))
		for _, c := range cities {
			out = append(out, City{ID: c.ID, Name: c.Name, StateUF: c.StateUF})
		}
		return &CitiesListOutput{
			Body: CitiesData{Cities: out},
		}, nil
	})
}
