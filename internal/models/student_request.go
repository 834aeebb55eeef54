package models

// RegisterStudentRequest represents the request body for student registration.
// Validation happens in the service so failures carry stable messages and
// identical rules apply to every caller, not just this HTTP surface.
type RegisterStudentRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Course   *string `json:"course,omitempty"`
}
