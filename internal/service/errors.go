package service

// ValidationError means the caller's input is malformed or incomplete.
// The caller can correct the input and resubmit.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ConflictError means the normalized email already has a registration.
// The caller must choose a different email.
type ConflictError struct {
	Email string
}

func (e *ConflictError) Error() string { return "email already registered" }
