package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           string    `json:"user_id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Alert is a persisted record of a dispatched flood notification
type Alert struct {
	ID        int64     `json:"id" db:"id"`
	UserEmail string    `json:"user_email" db:"user_email"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	FloodRisk float64   `json:"flood_risk" db:"flood_risk"`
	DepthCM   float64   `json:"depth_cm" db:"depth_cm"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
