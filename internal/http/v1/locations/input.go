package locations

// StatesListInput for GET /locations/states (no parameters needed)
type StatesListInput struct{}

// CitiesListInput for GET /locations/cities/{uf}
type CitiesListInput struct {
	UF string `path:"uf" pattern:"^[A-Za-z]{2}$" doc:"State code" example:"SP"`
}
