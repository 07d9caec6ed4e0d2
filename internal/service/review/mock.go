package review

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockReviewService implements Service for unit tests. Reviews are kept in
// submission order, which stands in for the created_at ordering of the
// Firestore implementation.
type MockReviewService struct {
	mu       sync.RWMutex
	reviews  []Review
	settings settings
}

// NewMockReviewService creates a new mock ledger.
func NewMockReviewService(opts ...Option) *MockReviewService {
	m := &MockReviewService{}
	for _, opt := range opts {
		opt(&m.settings)
	}
	return m
}

func (m *MockReviewService) Record(ctx context.Context, params RecordParams) (*Review, error) {
	if err := validateScore(params.Score); err != nil {
		return nil, err
	}
	if err := m.settings.checkOffering(ctx, params.ProfessionalID, params.ProfessionID); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r := Review{
		ID:             uuid.NewString(),
		ReviewerID:     params.ReviewerID,
		ProfessionalID: params.ProfessionalID,
		ProfessionID:   params.ProfessionID,
		Score:          params.Score,
		Comment:        params.Comment,
		CreatedAt:      time.Now().UTC(),
	}
	m.reviews = append(m.reviews, r)
	return &r, nil
}

func (m *MockReviewService) ScoreFor(ctx context.Context, professionalID string, professionID int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.reviews) - 1; i >= 0; i-- {
		r := m.reviews[i]
		if r.ProfessionalID == professionalID && r.ProfessionID == professionID {
			return r.Score, nil
		}
	}
	return 0, nil
}

func (m *MockReviewService) ScoresFor(ctx context.Context, professionalID string, professionIDs []int64) (map[int64]int, error) {
	wanted := make(map[int64]bool, len(professionIDs))
	for _, id := range professionIDs {
		wanted[id] = true
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	scores := make(map[int64]int)
	for _, r := range m.reviews {
		if r.ProfessionalID == professionalID && wanted[r.ProfessionID] {
			scores[r.ProfessionID] = r.Score
		}
	}
	return scores, nil
}

// Clear removes all reviews (useful for test cleanup).
func (m *MockReviewService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews = nil
}

// Compile-time interface check
var _ Service = (*MockReviewService)(nil)
