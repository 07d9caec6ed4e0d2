package catalog

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound      = errors.New("profession not found")
	ErrDuplicateName = errors.New("profession name already exists")
)

// Profession is an offerable trade in the canonical catalog.
// IDs are sequential and stable; names are unique (case-sensitive exact match).
type Profession struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Service defines profession catalog operations.
//
// Implementations must trim surrounding whitespace from names before
// storing or comparing them.
type Service interface {
	// Create registers a new profession and assigns it a fresh ID.
	Create(ctx context.Context, name string) (*Profession, error)
	// GetByID returns the profession with the given ID.
	GetByID(ctx context.Context, id int64) (*Profession, error)
	// GetByName returns the profession with the given exact name.
	GetByName(ctx context.Context, name string) (*Profession, error)
	// List returns all professions in insertion (ID) order.
	List(ctx context.Context) ([]Profession, error)
}
