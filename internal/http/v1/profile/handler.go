package profile

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/promarket/internal/platform/auth"
	"github.com/janisto/promarket/internal/platform/timeutil"
	directorysvc "github.com/janisto/promarket/internal/service/directory"
	locationsvc "github.com/janisto/promarket/internal/service/location"
)

// Register registers profile endpoints.
func Register(api huma.API, svc directorysvc.Service, locations locationsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-profile",
		Method:        http.MethodPost,
		Path:          "/profile",
		Summary:       "Register user profile",
		Description:   "Creates the directory entry for the authenticated user. New accounts start unverified.",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProfileCreateInput) (*ProfileCreateOutput, error) {
		user := auth.UserFromContext(ctx)

		if err := checkLocation(ctx, locations, input.Body.StateUF, input.Body.CityID); err != nil {
			return nil, err
		}

		u, err := svc.Create(ctx, user.UID, directorysvc.CreateParams{
			Name:     input.Body.Name,
			Email:    input.Body.Email,
			Phone:    input.Body.Phone,
			StateUF:  input.Body.StateUF,
			CityID:   input.Body.CityID,
			District: input.Body.District,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileCreateOutput{
			Location: "/v1/profile",
			Body:     toHTTPProfile(u),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Get current user's profile",
		Description: "Retrieves the directory entry for the authenticated user.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *ProfileGetInput) (*ProfileGetOutput, error) {
		user := auth.UserFromContext(ctx)

		u, err := svc.GetByID(ctx, user.UID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileGetOutput{
			Body: toHTTPProfile(u),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPatch,
		Path:        "/profile",
		Summary:     "Update current user's profile",
		Description: "Updates fields on the authenticated user's directory entry. Only provided fields are updated.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProfileUpdateInput) (*ProfileUpdateOutput, error) {
		user := auth.UserFromContext(ctx)
		if !hasProfileUpdateFields(input) {
			return nil, huma.Error422UnprocessableEntity("at least one field must be provided")
		}

		if input.Body.CityID != nil {
			uf := ""
			if input.Body.StateUF != nil {
				uf = *input.Body.StateUF
			}
			if err := checkLocation(ctx, locations, uf, *input.Body.CityID); err != nil {
				return nil, err
			}
		}

		u, err := svc.Update(ctx, user.UID, directorysvc.UpdateParams{
			Name:     input.Body.Name,
			Phone:    input.Body.Phone,
			StateUF:  input.Body.StateUF,
			CityID:   input.Body.CityID,
			District: input.Body.District,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileUpdateOutput{
			Body: toHTTPProfile(u),
		}, nil
	})
}

func hasProfileUpdateFields(input *ProfileUpdateInput) bool {
	return input.Body.Name != nil ||
		input.Body.Phone != nil ||
		input.Body.StateUF != nil ||
		input.Body.CityID != nil ||
		input.Body.District != nil
}

// checkLocation verifies the city exists and, when a state is supplied,
// that the city belongs to it.
func checkLocation(ctx context.Context, locations locationsvc.Service, uf string, cityID int64) error {
	city, err := locations.GetCity(ctx, cityID)
	if err != nil {
		if errors.Is(err, locationsvc.ErrNotFound) {
			return huma.Error422UnprocessableEntity("unknown city")
		}
		return huma.Error500InternalServerError("internal error")
	}
	if uf != "" && city.StateUF != strings.ToUpper(uf) {
		return huma.Error422UnprocessableEntity("city does not belong to state")
	}
	return nil
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, directorysvc.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	case errors.Is(err, directorysvc.ErrAlreadyExists):
		return huma.Error409Conflict("profile already exists")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

func toHTTPProfile(u *directorysvc.User) Profile {
	return Profile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		StateUF:   u.StateUF,
		CityID:    u.CityID,
		District:  u.District,
		Status:    string(u.Status),
		CreatedAt: timeutil.Time{Time: u.CreatedAt},
		UpdatedAt: timeutil.Time{Time: u.UpdatedAt},
	}
}
