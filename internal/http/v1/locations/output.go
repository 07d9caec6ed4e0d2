package locations

// State is one federative unit response entry.
type State struct {
	UF   string `json:"uf"   doc:"Two-letter state code" example:"SP"`
	Name string `json:"name" doc:"State name"            example:"São Paulo"`
}

// City is one municipality response entry.
type City struct {
	ID      int64  `json:"id"      doc:"City identifier" example:"3550308"`
	Name    string `json:"name"    doc:"City name"       example:"São Paulo"`
	StateUF string `json:"stateUf" doc:"State code"      example:"SP"`
}

// StatesData is the response body for the state table.
type StatesData struct {
	States []State `json:"states" doc:"All federative units in UF order"`
}

// StatesListOutput for GET /locations/states
type StatesListOutput struct {
	Body StatesData
}

// CitiesData is the response body for a state's cities.
type CitiesData struct {
	Cities []City `json:"cities" doc:"Cities ordered by name"`
}

// CitiesListOutput for GET /locations/cities/{uf}
type CitiesListOutput struct {
	Body CitiesData
}
