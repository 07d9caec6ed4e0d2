// Package roster tracks which professions each user offers.
package roster

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrUnknownProfession = errors.New("profession does not exist")
	ErrAlreadyOffered    = errors.New("profession already offered by user")
)

// OfferingStatus is the moderation state of a single offering.
type OfferingStatus string

const (
	// OfferingActive is the initial state of every new offering.
	OfferingActive OfferingStatus = "active"
	// OfferingSuspended marks offerings disabled by moderation.
	OfferingSuspended OfferingStatus = "suspended"
)

// Valid reports whether the status is one of the known variants.
func (s OfferingStatus) Valid() bool {
	switch s {
	case OfferingActive, OfferingSuspended:
		return true
	default:
		return false
	}
}

// Offering declares that a user offers a profession.
// The (UserID, ProfessionID) pair is unique.
type Offering struct {
	UserID       string
	ProfessionID int64
	Status       OfferingStatus
	CreatedAt    time.Time
}

// Service defines professional roster operations.
//
// Listing operations never filter by status: offerings are returned in any
// state so that status policy lives in one place, the matching engine.
type Service interface {
	// Add records that the user offers the profession, starting active.
	// The profession must exist in the catalog.
	Add(ctx context.Context, userID string, professionID int64) (*Offering, error)
	// ListForUser returns the user's offerings in creation order.
	// A user with no offerings yields an empty slice, not an error.
	ListForUser(ctx context.Context, userID string) ([]Offering, error)
	// ListForProfession returns every offering of the profession,
	// regardless of status, in no particular order.
	ListForProfession(ctx context.Context, professionID int64) ([]Offering, error)
}
