package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"studentreg-be/internal/entities"
)

var (
	// ErrStudentNotFound is returned when no student matches the lookup.
	ErrStudentNotFound = errors.New("student not found")

	// ErrDuplicateEmail is returned when an insert violates the unique
	// email constraint, i.e. a concurrent registration won the race.
	ErrDuplicateEmail = errors.New("email already registered")
)

// StudentRepository defines the interface for student database operations.
// Emails passed in must already be normalized.
type StudentRepository interface {
	Create(ctx context.Context, name, email, passwordHash string, course *string) (*entities.Student, error)
	FindByEmail(ctx context.Context, email string) (*entities.Student, error)
}

type studentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *sql.DB) StudentRepository {
	return &studentRepository{db: db}
}

// Create inserts a new student into the database. The unique constraint on
// email is the authoritative duplicate guard; violations surface as
// ErrDuplicateEmail.
func (r *studentRepository) Create(ctx context.Context, name, email, passwordHash string, course *string) (*entities.Student, error) {
	query := `
		INSERT INTO students (name, email, password_hash, course)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, course, created_at
	`

	var student entities.Student
	err := r.db.QueryRowContext(ctx, query, name, email, passwordHash, course).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.PasswordHash,
		&student.Course,
		&student.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return &student, nil
}

// FindByEmail finds a student by normalized email
func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*entities.Student, error) {
	query := `
		SELECT id, name, email, password_hash, course, created_at
		FROM students
		WHERE email = $1
	`

	var student entities.Student
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.PasswordHash,
		&student.Course,
		&student.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find student: %w", err)
	}

	return &student, nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
