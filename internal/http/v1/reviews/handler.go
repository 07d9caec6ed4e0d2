// Package reviews exposes review submission.
package reviews

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/promarket/internal/platform/auth"
	"github.com/janisto/promarket/internal/platform/timeutil"
	reviewsvc "github.com/janisto/promarket/internal/service/review"
)

// Register wires review routes into the provided API router.
func Register(api huma.API, svc reviewsvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-review",
		Method:        http.MethodPost,
		Path:          "/reviews",
		Summary:       "Record a review",
		Description:   "Appends a review for a professional and profession. Repeat reviews are allowed; the most recent one becomes the representative score.",
		Tags:          []string{"Reviews"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ReviewCreateInput) (*ReviewCreateOutput, error) {
		user := auth.UserFromContext(ctx)

		r, err := svc.Record(ctx, reviewsvc.RecordParams{
			ReviewerID:     user.UID,
			ProfessionalID: input.Body.ProfessionalID,
			ProfessionID:   input.Body.ProfessionID,
			Score:          input.Body.Score,
			Comment:        input.Body.Comment,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}

		return &ReviewCreateOutput{
			Location: prefix + "/reviews",
			Body:     toHTTPReview(r),
		}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, reviewsvc.ErrInvalidScore):
		return huma.Error422UnprocessableEntity("score must be between 0 and 5")
	case errors.Is(err, reviewsvc.ErrUnknownOffering):
		return huma.Error404NotFound("offering not found")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

func toHTTPReview(r *reviewsvc.Review) Review {
	return Review{
		ID:             r.ID,
		ReviewerID:     r.ReviewerID,
		ProfessionalID: r.ProfessionalID,
		ProfessionID:   r.ProfessionID,
		Score:          r.Score,
		Rating:         reviewsvc.Label(r.Score),
		Comment:        r.Comment,
		CreatedAt:      timeutil.Time{Time: r.CreatedAt},
	}
}
