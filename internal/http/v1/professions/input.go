package professions

import "github.com/janisto/promarket/internal/platform/pagination"

// ProfessionsListInput defines query parameters for listing professions.
type ProfessionsListInput struct {
	pagination.Params
}

// ProfessionCreateInput for POST /professions
type ProfessionCreateInput struct {
	Body struct {
		Name string `json:"name" minLength:"1" maxLength:"100" required:"true" doc:"Profession name" example:"Plumber"`
	}
}
