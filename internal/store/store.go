package store

import (
	"context"
	"errors"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

var (
	// ErrUserExists is returned when creating a user whose email is taken
	ErrUserExists = errors.New("user already exists")

	// ErrNotFound is returned when a looked-up record does not exist
	ErrNotFound = errors.New("record not found")
)

// UserStore is the account collaborator, keyed by email. Implementations
// are selected once at startup (durable sqlite or in-memory), never as a
// runtime fallback that would hide availability failures.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUser(ctx context.Context, email string) (*models.User, error)
}

// AlertStore records dispatched flood alerts per user
type AlertStore interface {
	SaveAlert(ctx context.Context, alert models.Alert) error
	ListAlerts(ctx context.Context, userEmail string, limit int) ([]models.Alert, error)
}
