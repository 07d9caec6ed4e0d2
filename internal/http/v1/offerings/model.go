package offerings

import (
	"github.com/janisto/promarket/internal/platform/timeutil"
)

// Offering represents one of the user's offered professions, enriched with
// the catalog name and the current reputation for the pair.
type Offering struct {
	ProfessionID int64         `json:"professionId" doc:"Profession identifier"  example:"7"`
	Name         string        `json:"name"         doc:"Profession name"        example:"Plumber"`
	Status       string        `json:"status"       doc:"Offering status"        example:"active" enum:"active,suspended"`
	Score        int           `json:"score"        doc:"Representative score"   example:"4"      minimum:"0" maximum:"5"`
	Rating       string        `json:"rating"       doc:"Reputation label"       example:"Good"`
	CreatedAt    timeutil.Time `json:"createdAt"    doc:"Creation timestamp"     example:"2024-01-15T10:30:00.000Z"`
}
