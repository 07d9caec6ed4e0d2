// Package search is the matching engine: given a profession and an optional
// city it finds eligible professionals and enriches them with contact info
// and current reputation.
package search

import (
	"context"
	"errors"

	"github.com/janisto/promarket/internal/service/directory"
	"github.com/janisto/promarket/internal/service/review"
	"github.com/janisto/promarket/internal/service/roster"
)

// allowedStatuses are the account states eligible for matching. Suspended
// and any future states are excluded here rather than in the roster, so the
// filtering policy lives in one place.
var allowedStatuses = map[directory.AccountStatus]bool{
	directory.StatusActive:     true,
	directory.StatusUnverified: true,
}

// Match is one enriched search result.
type Match struct {
	ProfessionalID string
	ProfessionID   int64
	Name           string
	Contact        string
	Score          int
	Rating         string
}

// Engine runs searches against its three collaborators. It holds no state
// of its own; every search is an independent read pipeline.
type Engine struct {
	roster    roster.Service
	directory directory.Service
	reviews   review.Service
}

// NewEngine creates a matching engine.
func NewEngine(r roster.Service, d directory.Service, rev review.Service) *Engine {
	return &Engine{roster: r, directory: d, reviews: rev}
}

// Search returns every professional offering the profession whose account
// status allows matching, optionally restricted to a city. Results keep the
// roster's enumeration order. An empty result is success, not an error.
func (e *Engine) Search(ctx context.Context, professionID int64, cityID *int64) ([]Match, error) {
	offerings, err := e.roster.ListForProfession(ctx, professionID)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(offerings))
	for _, o := range offerings {
		user, err := e.directory.GetByID(ctx, o.UserID)
		if err != nil {
			if errors.Is(err, directory.ErrNotFound) {
				// Roster entries may outlive their directory records.
				continue
			}
			return nil, err
		}
		if !allowedStatuses[user.Status] {
			continue
		}
		if cityID != nil && user.CityID != *cityID {
			continue
		}

		score, err := e.reviews.ScoreFor(ctx, o.UserID, professionID)
		if err != nil {
			return nil, err
		}

		matches = append(matches, Match{
			ProfessionalID: user.ID,
			ProfessionID:   professionID,
			Name:           user.Name,
			Contact:        user.Phone,
			Score:          score,
			Rating:         review.Label(score),
		})
	}
	return matches, nil
}
