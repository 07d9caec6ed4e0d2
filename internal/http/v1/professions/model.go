package professions

import (
	"github.com/janisto/promarket/internal/platform/timeutil"
)

// Profession represents a catalog entry response.
type Profession struct {
	ID        int64         `json:"id"        doc:"Unique identifier"  example:"7"`
	Name      string        `json:"name"      doc:"Profession name"    example:"Plumber"`
	CreatedAt timeutil.Time `json:"createdAt" doc:"Creation timestamp" example:"2024-01-15T10:30:00.000Z"`
}
