package directory

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MockDirectoryService implements Service for unit tests.
type MockDirectoryService struct {
	mu    sync.RWMutex
	users map[string]*User
}

// NewMockDirectoryService creates a new mock service.
func NewMockDirectoryService() *MockDirectoryService {
	return &MockDirectoryService{
		users: make(map[string]*User),
	}
}

func (m *MockDirectoryService) Create(ctx context.Context, userID string, params CreateParams) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[userID]; exists {
		return nil, ErrAlreadyExists
	}

	now := time.Now().UTC()
	u := &User{
		ID:        userID,
		Name:      strings.TrimSpace(params.Name),
		Email:     strings.ToLower(strings.TrimSpace(params.Email)),
		Phone:     strings.TrimSpace(params.Phone),
		StateUF:   strings.ToUpper(strings.TrimSpace(params.StateUF)),
		CityID:    params.CityID,
		District:  strings.TrimSpace(params.District),
		Status:    StatusUnverified,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.users[userID] = u
	return u, nil
}

func (m *MockDirectoryService) GetByID(ctx context.Context, userID string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, exists := m.users[userID]
	if !exists {
		return nil, ErrNotFound
	}
	return u, nil
}

func (m *MockDirectoryService) GetByEmail(ctx context.Context, email string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockDirectoryService) Update(ctx context.Context, userID string, params UpdateParams) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, exists := m.users[userID]
	if !exists {
		return nil, ErrNotFound
	}

	if params.Name != nil {
		u.Name = strings.TrimSpace(*params.Name)
	}
	if params.Phone != nil {
		u.Phone = strings.TrimSpace(*params.Phone)
	}
	if params.StateUF != nil {
		u.StateUF = strings.ToUpper(strings.TrimSpace(*params.StateUF))
	}
	if params.CityID != nil {
		u.CityID = *params.CityID
	}
	if params.District != nil {
		u.District = strings.TrimSpace(*params.District)
	}
	u.UpdatedAt = time.Now().UTC()
	return u, nil
}

// SetStatus overrides a user's account status, standing in for the external
// moderation flow. Returns false when the user does not exist.
func (m *MockDirectoryService) SetStatus(userID string, status AccountStatus) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, exists := m.users[userID]
	if !exists {
		return false
	}
	u.Status = status
	return true
}

// Clear removes all users (useful for test cleanup).
func (m *MockDirectoryService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = make(map[string]*User)
}

// Compile-time interface check
var _ Service = (*MockDirectoryService)(nil)
