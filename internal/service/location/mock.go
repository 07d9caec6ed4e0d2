package location

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MockLocationService implements Service for unit tests.
type MockLocationService struct {
	mu     sync.RWMutex
	cities map[int64]City
}

// NewMockLocationService creates a new mock city registry.
func NewMockLocationService() *MockLocationService {
	return &MockLocationService{cities: make(map[int64]City)}
}

// AddCity seeds a city into the registry.
func (m *MockLocationService) AddCity(c City) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cities[c.ID] = c
}

func (m *MockLocationService) GetCity(ctx context.Context, id int64) (*City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.cities[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *MockLocationService) CitiesForState(ctx context.Context, uf string) ([]City, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	if !ValidUF(uf) {
		return nil, ErrNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	cities := make([]City, 0)
	for _, c := range m.cities {
		if c.StateUF == uf {
			cities = append(cities, c)
		}
	}
	sort.Slice(cities, func(i, j int) bool { return cities[i].Name < cities[j].Name })
	return cities, nil
}

// Clear removes all cities (useful for test cleanup).
func (m *MockLocationService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cities = make(map[int64]City)
}

// Compile-time interface check
var _ Service = (*MockLocationService)(nil)
