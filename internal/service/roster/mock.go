package roster

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/janisto/promarket/internal/service/catalog"
)

// MockRosterService implements Service for unit tests.
type MockRosterService struct {
	mu        sync.RWMutex
	offerings []Offering
	catalog   catalog.Service
}

// NewMockRosterService creates a new mock roster validating against the
// given catalog.
func NewMockRosterService(cat catalog.Service) *MockRosterService {
	return &MockRosterService{catalog: cat}
}

func (m *MockRosterService) Add(ctx context.Context, userID string, professionID int64) (*Offering, error) {
	if _, err := m.catalog.GetByID(ctx, professionID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrUnknownProfession
		}
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, o := range m.offerings {
		if o.UserID == userID && o.ProfessionID == professionID {
			return nil, ErrAlreadyOffered
		}
	}

	o := Offering{
		UserID:       userID,
		ProfessionID: professionID,
		Status:       OfferingActive,
		CreatedAt:    time.Now().UTC(),
	}
	m.offerings = append(m.offerings, o)
	return &o, nil
}

func (m *MockRosterService) ListForUser(ctx context.Context, userID string) ([]Offering, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Offering, 0)
	for _, o := range m.offerings {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MockRosterService) ListForProfession(ctx context.Context, professionID int64) ([]Offering, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Offering, 0)
	for _, o := range m.offerings {
		if o.ProfessionID == professionID {
			out = append(out, o)
		}
	}
	return out, nil
}

// SetStatus overrides an offering's status (useful for moderation scenarios
// in tests). Returns false when the offering does not exist.
func (m *MockRosterService) SetStatus(userID string, professionID int64, status OfferingStatus) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, o := range m.offerings {
		if o.UserID == userID && o.ProfessionID == professionID {
			m.offerings[i].Status = status
			return true
		}
	}
	return false
}

// Clear removes all offerings (useful for test cleanup).
func (m *MockRosterService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offerings = nil
}

// Compile-time interface check
var _ Service = (*MockRosterService)(nil)
