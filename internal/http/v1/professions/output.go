package professions

// ListData is the response body containing paginated professions.
type ListData struct {
	Professions []Profession `json:"professions" doc:"List of professions"`
	Total       int          `json:"total"       doc:"Total count of professions" example:"12"`
}

// ProfessionsListOutput is the response wrapper with pagination Link header.
type ProfessionsListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ListData
}

// ProfessionCreateOutput for POST /professions (201 Created)
type ProfessionCreateOutput struct {
	Location string `header:"Location" doc:"URL of created profession"`
	Body     Profession
}
