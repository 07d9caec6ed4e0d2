package search

// SearchInput defines query parameters for the professional search.
type SearchInput struct {
	ProfessionID int64  `query:"professionId" minimum:"1" required:"true" doc:"Profession to search for" example:"7"`
	CityID       *int64 `query:"cityId"       minimum:"1"                 doc:"Restrict results to a city" example:"3550308"`
}
