package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

// SQLiteStore implements UserStore and AlertStore on the shared sqlite
// database
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a sqlite-backed store
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// CreateUser inserts a new user record
func (s *SQLiteStore) CreateUser(ctx context.Context, user models.User) error {
	query := `INSERT INTO users (id, email, password_hash, name, created_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by email
func (s *SQLiteStore) GetUser(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, password_hash, name, created_at
		FROM users WHERE email = ?`

	var u models.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// SaveAlert inserts an alert record
func (s *SQLiteStore) SaveAlert(ctx context.Context, alert models.Alert) error {
	query := `INSERT INTO alerts (user_email, latitude, longitude, flood_risk, depth_cm, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	createdAt := alert.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, query,
		alert.UserEmail, alert.Latitude, alert.Longitude, alert.FloodRisk, alert.DepthCM, createdAt)
	if err != nil {
		return fmt.Errorf("failed to save alert: %w", err)
	}
	return nil
}

// ListAlerts retrieves the most recent alerts for a user
func (s *SQLiteStore) ListAlerts(ctx context.Context, userEmail string, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, user_email, latitude, longitude, flood_risk, depth_cm, created_at
		FROM alerts WHERE user_email = ? ORDER BY created_at DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, userEmail, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var a models.Alert
		if err := rows.Scan(&a.ID, &a.UserEmail, &a.Latitude, &a.Longitude, &a.FloodRisk, &a.DepthCM, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

var _ UserStore = (*SQLiteStore)(nil)
var _ AlertStore = (*SQLiteStore)(nil)
