package professions

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/promarket/internal/platform/pagination"
	"github.com/janisto/promarket/internal/platform/timeutil"
	catalogsvc "github.com/janisto/promarket/internal/service/catalog"
)

const cursorType = "profession"

// Register wires profession catalog routes into the provided API router.
func Register(api huma.API, svc catalogsvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-professions",
		Method:      http.MethodGet,
		Path:        "/professions",
		Summary:     "List professions with cursor-based pagination",
		Description: "Returns the profession catalog in stable insertion order. Use the cursor from the Link header to navigate between pages.",
		Tags:        []string{"Professions"},
	}, func(ctx context.Context, input *ProfessionsListInput) (*ProfessionsListOutput, error) {
		cursor, err := pagination.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor format")
		}

		if cursor.Type != "" && cursor.Type != cursorType {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}

		professions, err := svc.List(ctx)
		if err != nil {
			return nil, mapServiceError(err)
		}

		all := make([]Profession, 0, len(professions))
		for _, p := range professions {
			all = append(all, toHTTPProfession(&p))
		}

		if cursor.Value != "" && findProfessionIndex(all, cursor.Value) == -1 {
			return nil, huma.Error400BadRequest("cursor references unknown profession")
		}

		result := pagination.Paginate(
			all,
			cursor,
			input.DefaultLimit(),
			cursorType,
			professionID,
			prefix+"/professions",
			url.Values{},
		)

		return &ProfessionsListOutput{
			Link: result.LinkHeader,
			Body: ListData{
				Professions: result.Items,
				Total:       result.Total,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-profession",
		Method:        http.MethodPost,
		Path:          "/professions",
		Summary:       "Create profession",
		Description:   "Registers a new profession in the catalog. Names are unique (case-sensitive).",
		Tags:          []string{"Professions"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProfessionCreateInput) (*ProfessionCreateOutput, error) {
		if strings.TrimSpace(input.Body.Name) == "" {
			return nil, huma.Error422UnprocessableEntity("name must not be blank")
		}

		p, err := svc.Create(ctx, input.Body.Name)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfessionCreateOutput{
			Location: fmt.Sprintf("%s/professions/%d", prefix, p.ID),
			Body:     toHTTPProfession(p),
		}, nil
	})
}

func professionID(p Profession) string {
	return strconv.FormatInt(p.ID, 10)
}

func findProfessionIndex(professions []Profession, id string) int {
	return slices.IndexFunc(professions, func(p Profession) bool {
		return professionID(p) == id
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, catalogsvc.ErrNotFound):
		return huma.Error404NotFound("profession not found")
	case errors.Is(err, catalogsvc.ErrDuplicateName):
		return huma.Error409Conflict("profession already exists")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

func toHTTPProfession(p *catalogsvc.Profession) Profession {
	return Profession{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: timeutil.Time{Time: p.CreatedAt},
	}
}
