package ibge

import (
	"context"
	"strings"
	"sync"
)

// MockIBGEService implements Service for unit tests with pre-populated demo data.
type MockIBGEService struct {
	mu             sync.RWMutex
	municipalities map[string][]Municipality
}

// NewMockIBGEService creates a mock pre-populated with a handful of SP and RJ
// municipalities.
func NewMockIBGEService() *MockIBGEService {
	return &MockIBGEService{
		municipalities: map[string][]Municipality{
			"SP": {
				{ID: 3509502, Name: "Campinas", StateUF: "SP"},
				{ID: 3550308, Name: "São Paulo", StateUF: "SP"},
			},
			"RJ": {
				{ID: 3303302, Name: "Niterói", StateUF: "RJ"},
				{ID: 3304557, Name: "Rio de Janeiro", StateUF: "RJ"},
			},
		},
	}
}

func (m *MockIBGEService) Municipalities(_ context.Context, uf string) ([]Municipality, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Municipality, len(m.municipalities[uf]))
	copy(out, m.municipalities[uf])
	return out, nil
}

// Set replaces the municipalities returned for a state. Test helper.
func (m *MockIBGEService) Set(uf string, municipalities []Municipality) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.municipalities[strings.ToUpper(uf)] = municipalities
}

// Compile-time interface check
var _ Service = (*MockIBGEService)(nil)
