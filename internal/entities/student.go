package entities

import "time"

// Student represents a student record in the database.
// Email is always stored normalized (trimmed and lower-cased); it carries
// a unique constraint and is the identity key for duplicate detection.
type Student struct {
	ID           string    `json:"id"` // UUID
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Don't expose password hash in JSON
	Course       *string   `json:"course,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
