package offerings

// ListData is the response body containing the user's offerings.
type ListData struct {
	Offerings []Offering `json:"offerings" doc:"Professions offered by the user"`
	Total     int        `json:"total"     doc:"Total count of offerings" example:"3"`
}

// OfferingsListOutput for GET /me/professions
type OfferingsListOutput struct {
	Body ListData
}

// OfferingCreateOutput for POST /me/professions (201 Created)
type OfferingCreateOutput struct {
	Location string `header:"Location" doc:"URL of the offering list"`
	Body     Offering
}
