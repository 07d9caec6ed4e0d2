// Package review is the append-only reputation ledger.
package review

import (
	"context"
	"errors"
	"time"

	"github.com/janisto/promarket/internal/service/roster"
)

// Service errors
var (
	ErrInvalidScore    = errors.New("score out of range")
	ErrUnknownOffering = errors.New("no offering for professional and profession")
)

// Score bounds. Zero means "no rating given".
const (
	MinScore = 0
	MaxScore = 5
)

// ratingLabels is the fixed ordinal label table indexed by score.
var ratingLabels = [...]string{"None", "Terrible", "Bad", "Average", "Good", "Excellent"}

// Label maps an integer score to its display label.
// Out-of-range scores map to the zero label.
func Label(score int) string {
	if score < MinScore || score > MaxScore {
		return ratingLabels[0]
	}
	return ratingLabels[score]
}

// Review is a single recorded rating. Reviews are never updated or deleted;
// repeat reviews for the same pair accumulate and the newest one is the
// representative score.
type Review struct {
	ID             string
	ReviewerID     string
	ProfessionalID string
	ProfessionID   int64
	Score          int
	Comment        string
	CreatedAt      time.Time
}

// RecordParams holds the caller-supplied fields of a new review.
type RecordParams struct {
	ReviewerID     string
	ProfessionalID string
	ProfessionID   int64
	Score          int
	Comment        string
}

// Service defines reputation ledger operations.
type Service interface {
	// Record appends a review. Fails with ErrInvalidScore when the score is
	// out of range. The ledger does not reject repeat reviews or
	// self-reviews.
	Record(ctx context.Context, params RecordParams) (*Review, error)
	// ScoreFor returns the representative score for the pair: the most
	// recently recorded review's score, or 0 when no review exists.
	ScoreFor(ctx context.Context, professionalID string, professionID int64) (int, error)
	// ScoresFor is the batched form of ScoreFor. Professions with no
	// reviews are absent from the result map.
	ScoresFor(ctx context.Context, professionalID string, professionIDs []int64) (map[int64]int, error)
}

type settings struct {
	offeringRoster roster.Service
}

// Option configures a ledger implementation.
type Option func(*settings)

// WithOfferingCheck makes Record reject reviews for (professional,
// profession) pairs with no roster entry, returning ErrUnknownOffering.
// The default is the permissive contract: reviews are accepted unchecked.
func WithOfferingCheck(r roster.Service) Option {
	return func(s *settings) {
		s.offeringRoster = r
	}
}

// checkOffering enforces the optional roster cross-check. A nil roster
// means the check is disabled.
func (s *settings) checkOffering(ctx context.Context, professionalID string, professionID int64) error {
	if s.offeringRoster == nil {
		return nil
	}
	offerings, err := s.offeringRoster.ListForUser(ctx, professionalID)
	if err != nil {
		return err
	}
	for _, o := range offerings {
		if o.ProfessionID == professionID {
			return nil
		}
	}
	return ErrUnknownOffering
}

func validateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return ErrInvalidScore
	}
	return nil
}
