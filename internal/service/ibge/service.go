package ibge

import (
	"context"
	"errors"
	"fmt"
)

// Service errors
var (
	ErrNotFound    = errors.New("ibge resource not found")
	ErrRateLimited = errors.New("ibge rate limit exceeded")
	ErrUpstream    = errors.New("ibge upstream error")
)

// UpstreamErrorKind classifies IBGE upstream failures.
type UpstreamErrorKind string

const (
	UpstreamErrorKindNotFound    UpstreamErrorKind = "not_found"
	UpstreamErrorKindRateLimited UpstreamErrorKind = "rate_limited"
	UpstreamErrorKindUpstream    UpstreamErrorKind = "upstream"
)

// UpstreamError includes IBGE response metadata for error mapping.
type UpstreamError struct {
	Kind       UpstreamErrorKind
	Status     int
	RetryAfter string
	cause      error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "ibge upstream error"
	}
	if e.cause == nil {
		return fmt.Sprintf("ibge upstream error (kind=%s status=%d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("ibge upstream error (kind=%s status=%d): %v", e.Kind, e.Status, e.cause)
}

// Unwrap enables errors.Is/As against sentinel service errors.
func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Municipality is a city as published by the IBGE localities API. ID is the
// seven-digit IBGE municipality code.
type Municipality struct {
	ID      int64
	Name    string
	StateUF string
}

// Service defines the IBGE localities operations the seeding tool depends on.
type Service interface {
	Municipalities(ctx context.Context, uf string) ([]Municipality, error)
}
