package reviews

import (
	"github.com/janisto/promarket/internal/platform/timeutil"
)

// Review represents a recorded review response.
type Review struct {
	ID             string        `json:"id"             doc:"Review identifier"        example:"rev-abc123"`
	ReviewerID     string        `json:"reviewerId"     doc:"Reviewer's user ID"       example:"user-456"`
	ProfessionalID string        `json:"professionalId" doc:"Reviewed professional"    example:"user-123"`
	ProfessionID   int64         `json:"professionId"   doc:"Profession identifier"    example:"7"`
	Score          int           `json:"score"          doc:"Recorded score"           example:"4" minimum:"0" maximum:"5"`
	Rating         string        `json:"rating"         doc:"Reputation label"         example:"Good"`
	Comment        string        `json:"comment"        doc:"Free-form comment"        example:"Fast and tidy work"`
	CreatedAt      timeutil.Time `json:"createdAt"      doc:"Submission timestamp"     example:"2024-01-15T10:30:00.000Z"`
}

// ReviewCreateOutput for POST /reviews (201 Created)
type ReviewCreateOutput struct {
	Location string `header:"Location" doc:"URL of the review collection"`
	Body     Review
}
