package store

import (
	"context"
	"sync"
	"time"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

// MemoryStore implements UserStore and AlertStore in process memory.
// Used for tests and for running without a database file; contents do not
// survive a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[string]models.User
	alerts []models.Alert
	nextID int64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[string]models.User),
		nextID: 1,
	}
}

// CreateUser inserts a new user record
func (m *MemoryStore) CreateUser(_ context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Email]; exists {
		return ErrUserExists
	}
	m.users[user.Email] = user
	return nil
}

// GetUser retrieves a user by email
func (m *MemoryStore) GetUser(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// SaveAlert appends an alert record
func (m *MemoryStore) SaveAlert(_ context.Context, alert models.Alert) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	alert.ID = m.nextID
	m.nextID++
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	m.alerts = append(m.alerts, alert)
	return nil
}

// ListAlerts retrieves the most recent alerts for a user
func (m *MemoryStore) ListAlerts(_ context.Context, userEmail string, limit int) ([]models.Alert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	var alerts []models.Alert
	for i := len(m.alerts) - 1; i >= 0 && len(alerts) < limit; i-- {
		if m.alerts[i].UserEmail == userEmail {
			alerts = append(alerts, m.alerts[i])
		}
	}
	return alerts, nil
}

var _ UserStore = (*MemoryStore)(nil)
var _ AlertStore = (*MemoryStore)(nil)
