package offerings

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/promarket/internal/platform/auth"
	"github.com/janisto/promarket/internal/platform/timeutil"
	catalogsvc "github.com/janisto/promarket/internal/service/catalog"
	reviewsvc "github.com/janisto/promarket/internal/service/review"
	rostersvc "github.com/janisto/promarket/internal/service/roster"
)

// Register wires the authenticated user's offering routes into the provided
// API router.
func Register(api huma.API, roster rostersvc.Service, catalog catalogsvc.Service, reviews reviewsvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-my-professions",
		Method:      http.MethodGet,
		Path:        "/me/professions",
		Summary:     "List current user's offered professions",
		Description: "Returns the professions the authenticated user offers, in the order they were added, with the current reputation per profession.",
		Tags:        []string{"Offerings"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *OfferingsListInput) (*OfferingsListOutput, error) {
		user := auth.UserFromContext(ctx)

		userOfferings, err := roster.ListForUser(ctx, user.UID)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}

		ids := make([]int64, 0, len(userOfferings))
		for _, o := range userOfferings {
			ids = append(ids, o.ProfessionID)
		}

		scores, err := reviews.ScoresFor(ctx, user.UID, ids)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}

		out := make([]Offering, 0, len(userOfferings))
		for _, o := range userOfferings {
			p, err := catalog.GetByID(ctx, o.ProfessionID)
			if err != nil {
				if errors.Is(err, catalogsvc.ErrNotFound) {
					// Catalog entries are never deleted in normal
					// operation; skip rather than fail the whole list.
					continue
				}
				return nil, huma.Error500InternalServerError("internal error")
			}

			score := scores[o.ProfessionID]
			out = append(out, Offering{
				ProfessionID: o.ProfessionID,
				Name:         p.Name,
				Status:       string(o.Status),
				Score:        score,
				Rating:       reviewsvc.Label(score),
				CreatedAt:    timeutil.Time{Time: o.CreatedAt},
			})
		}

		return &OfferingsListOutput{
			Body: ListData{
				Offerings: out,
				Total:     len(out),
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "add-my-profession",
		Method:        http.MethodPost,
		Path:          "/me/professions",
		Summary:       "Add a profession to the current user's offerings",
		Description:   "Declares that the authenticated user offers the profession. Each profession can be added once.",
		Tags:          []string{"Offerings"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *OfferingCreateInput) (*OfferingCreateOutput, error) {
		user := auth.UserFromContext(ctx)

		o, err := roster.Add(ctx, user.UID, input.Body.ProfessionID)
		if err != nil {
			return nil, mapServiceError(err)
		}

		p, err := catalog.GetByID(ctx, o.ProfessionID)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}

		return &OfferingCreateOutput{
			Location: prefix + "/me/professions",
			Body: Offering{
				ProfessionID: o.ProfessionID,
				Name:         p.Name,
				Status:       string(o.Status),
				Score:        0,
				Rating:       reviewsvc.Label(0),
				CreatedAt:    timeutil.Time{Time: o.CreatedAt},
			},
		}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, rostersvc.ErrUnknownProfession):
		return huma.Error404NotFound("profession not found")
	case errors.Is(err, rostersvc.ErrAlreadyOffered):
		return huma.Error409Conflict("profession already offered")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
