package catalog

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MockCatalogService implements Service for unit tests.
type MockCatalogService struct {
	mu          sync.RWMutex
	professions []Profession
	lastID      int64
}

// NewMockCatalogService creates a new mock catalog.
func NewMockCatalogService() *MockCatalogService {
	return &MockCatalogService{}
}

func (m *MockCatalogService) Create(ctx context.Context, name string) (*Profession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = strings.TrimSpace(name)
	for _, p := range m.professions {
		if p.Name == name {
			return nil, ErrDuplicateName
		}
	}

	m.lastID++
	p := Profession{
		ID:        m.lastID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	m.professions = append(m.professions, p)
	return &p, nil
}

func (m *MockCatalogService) GetByID(ctx context.Context, id int64) (*Profession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.professions {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockCatalogService) GetByName(ctx context.Context, name string) (*Profession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = strings.TrimSpace(name)
	for _, p := range m.professions {
		if p.Name == name {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockCatalogService) List(ctx context.Context) ([]Profession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Profession, len(m.professions))
	copy(out, m.professions)
	return out, nil
}

// Clear removes all professions (useful for test cleanup).
func (m *MockCatalogService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.professions = nil
	m.lastID = 0
}

// Compile-time interface check
var _ Service = (*MockCatalogService)(nil)
