package offerings

// OfferingsListInput for GET /me/professions (no parameters needed)
type OfferingsListInput struct{}

// OfferingCreateInput for POST /me/professions
type OfferingCreateInput struct {
	Body struct {
		ProfessionID int64 `json:"professionId" minimum:"1" required:"true" doc:"Profession to offer" example:"7"`
	}
}
