package reviews

// ReviewCreateInput for POST /reviews
type ReviewCreateInput struct {
	Body struct {
		ProfessionalID string `json:"professionalId" minLength:"1" required:"true" doc:"Professional being reviewed" example:"user-123"`
		ProfessionID   int64  `json:"professionId"   minimum:"1"   required:"true" doc:"Profession the review applies to" example:"7"`
		Score          int    `json:"score"          minimum:"0" maximum:"5"       doc:"Score, 0 means no rating" example:"4"`
		Comment        string `json:"comment,omitempty" maxLength:"1000"           doc:"Optional free-form comment" example:"Fast and tidy work"`
	}
}
