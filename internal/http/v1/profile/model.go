package profile

import (
	"github.com/janisto/promarket/internal/platform/timeutil"
)

// Profile represents a directory user response.
type Profile struct {
	ID        string        `json:"id"        doc:"Unique identifier"     example:"user-123"`
	Name      string        `json:"name"      doc:"Full name"             example:"Maria Silva"`
	Email     string        `json:"email"     doc:"Email address"         example:"maria@example.com"`
	Phone     string        `json:"phone"     doc:"Phone number (E.164)"  example:"+5511999990000"`
	StateUF   string        `json:"stateUf"   doc:"State code"            example:"SP"`
	CityID    int64         `json:"cityId"    doc:"City identifier"       example:"3550308"`
	District  string        `json:"district"  doc:"District"              example:"Pinheiros"`
	Status    string        `json:"status"    doc:"Account status"        example:"unverified" enum:"active,unverified,suspended"`
	CreatedAt timeutil.Time `json:"createdAt" doc:"Creation timestamp"    example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt timeutil.Time `json:"updatedAt" doc:"Last update timestamp" example:"2024-01-15T10:30:00.000Z"`
}
