// Package directory is the user directory: identity, contact and account
// status for every registered user. The matching engine only reads from it;
// writes come from the registration and profile endpoints.
package directory

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
)

// AccountStatus is the moderation state of a user account.
type AccountStatus string

const (
	// StatusActive marks a fully verified account.
	StatusActive AccountStatus = "active"
	// StatusUnverified is the initial state of every new account.
	StatusUnverified AccountStatus = "unverified"
	// StatusSuspended marks accounts disabled by moderation.
	StatusSuspended AccountStatus = "suspended"
)

// Valid reports whether the status is one of the known variants.
func (s AccountStatus) Valid() bool {
	switch s {
	case StatusActive, StatusUnverified, StatusSuspended:
		return true
	default:
		return false
	}
}

// User represents stored directory data. ID is the Firebase UID.
type User struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	StateUF   string
	CityID    int64
	District  string
	Status    AccountStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateParams for registering a user.
type CreateParams struct {
	Name     string
	Email    string
	Phone    string
	StateUF  string
	CityID   int64
	District string
}

// UpdateParams for updating a user. Nil fields are left unchanged.
type UpdateParams struct {
	Name     *string
	Phone    *string
	StateUF  *string
	CityID   *int64
	District *string
}

// Service defines user directory operations.
//
// Implementations must normalize input data:
//   - Email: lowercase and trim whitespace
//   - Phone: trim whitespace
type Service interface {
	// Create registers a user. New accounts start unverified.
	Create(ctx context.Context, userID string, params CreateParams) (*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, userID string, params UpdateParams) (*User, error)
}
