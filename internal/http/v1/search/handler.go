// Package search exposes the professional matching endpoint.
package search

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	searchsvc "github.com/janisto/promarket/internal/service/search"
)

// Register wires the search route into the provided API router.
func Register(api huma.API, engine *searchsvc.Engine) {
	huma.Register(api, huma.Operation{
		OperationID: "search-professionals",
		Method:      http.MethodGet,
		Path:        "/search/professionals",
		Summary:     "Search professionals by profession",
		Description: "Returns professionals offering the profession, optionally restricted to a city, with contact info and current reputation.",
		Tags:        []string{"Search"},
	}, func(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
		matches, err := engine.Search(ctx, input.ProfessionID, input.CityID)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}

		results := make([]Result, 0, len(matches))
		for _, m := range matches {
			results = append(results, Result{
				ProfessionalID: m.ProfessionalID,
				ProfessionID:   m.ProfessionID,
				Name:           m.Name,
				Contact:        m.Contact,
				Score:          m.Score,
				Rating:         m.Rating,
			})
		}

		return &SearchOutput{
			Body: ListData{
				Results: results,
				Total:   len(results),
			},
		}, nil
	})
}
