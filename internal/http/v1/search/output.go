package search

// Result is one enriched search hit.
type Result struct {
	ProfessionalID string `json:"professionalId" doc:"Professional's user ID" example:"user-123"`
	ProfessionID   int64  `json:"professionId"   doc:"Profession identifier"  example:"7"`
	Name           string `json:"name"           doc:"Professional's name"    example:"Maria Silva"`
	Contact        string `json:"contact"        doc:"Contact phone"          example:"+5511999990000"`
	Score          int    `json:"score"          doc:"Representative score"   example:"4" minimum:"0" maximum:"5"`
	Rating         string `json:"rating"         doc:"Reputation label"       example:"Good"`
}

// ListData is the response body containing search results.
type ListData struct {
	Results []Result `json:"results" doc:"Matching professionals in roster order"`
	Total   int      `json:"total"   doc:"Total count of matches" example:"2"`
}

// SearchOutput for GET /search/professionals
type SearchOutput struct {
	Body ListData
}
