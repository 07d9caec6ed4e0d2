package profile

// ProfileCreateInput for POST /profile
type ProfileCreateInput struct {
	Body struct {
		Name     string `json:"name"     minLength:"1" maxLength:"200"  required:"true" doc:"Full name"           example:"Maria Silva"`
		Email    string `json:"email"    format:"email"                 required:"true" doc:"Email address"       example:"maria@example.com"`
		Phone    string `json:"phone"    pattern:"^\\+[1-9]\\d{6,14}$" required:"true" doc:"Phone (E.164)"       example:"+5511999990000"`
		StateUF  string `json:"stateUf"  pattern:"^[A-Za-z]{2}$"        required:"true" doc:"State code"          example:"SP"`
		CityID   int64  `json:"cityId"   minimum:"1"                    required:"true" doc:"City identifier"     example:"3550308"`
		District string `json:"district,omitempty" maxLength:"200"                      doc:"District"            example:"Pinheiros"`
	}
}

// ProfileGetInput for GET /profile (no body needed)
type ProfileGetInput struct{}

// ProfileUpdateInput for PATCH /profile
type ProfileUpdateInput struct {
	Body struct {
		Name     *string `json:"name,omitempty"     minLength:"1" maxLength:"200"  doc:"Full name"       example:"Maria Silva"`
		Phone    *string `json:"phone,omitempty"    pattern:"^\\+[1-9]\\d{6,14}$" doc:"Phone (E.164)"   example:"+5511999990000"`
		StateUF  *string `json:"stateUf,omitempty"  pattern:"^[A-Za-z]{2}$"        doc:"State code"      example:"SP"`
		CityID   *int64  `json:"cityId,omitempty"   minimum:"1"                    doc:"City identifier" example:"3550308"`
		District *string `json:"district,omitempty" maxLength:"200"                doc:"District"        example:"Pinheiros"`
	}
}
