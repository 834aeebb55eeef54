package models

import "time"

// StudentResponse is the sanitized student view returned to callers.
// It has no password field at all, so the hash cannot leak through
// serialization.
type StudentResponse struct {
	ID        string    `json:"id"` // UUID
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Course    *string   `json:"course,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterStudentResponse represents the response after a successful registration
type RegisterStudentResponse struct {
	Message string          `json:"message"`
	Student StudentResponse `json:"student"`
}
