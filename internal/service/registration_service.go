package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"studentreg-be/internal/cache"
	"studentreg-be/internal/entities"
	"studentreg-be/internal/models"
	"studentreg-be/internal/repository"
)

// RegistrationService defines the interface for student registration business logic
type RegistrationService interface {
	Register(ctx context.Context, req *models.RegisterStudentRequest) (*models.RegisterStudentResponse, error)
}

type registrationService struct {
	repo       repository.StudentRepository
	cache      cache.Cache
	bcryptCost int
}

// NewRegistrationService creates a new registration service. The cache may
// be nil (allows graceful degradation when Redis is unavailable).
func NewRegistrationService(repo repository.StudentRepository, cacheClient cache.Cache, bcryptCost int) RegistrationService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	svc := &registrationService{
		repo:       repo,
		bcryptCost: bcryptCost,
	}
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// NormalizeEmail trims surrounding whitespace and lower-cases an email
// address. The result is the identity key for duplicate detection; the
// function is idempotent.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates the request, rejects duplicate emails, hashes the
// password, and persists a new student record. On success exactly one
// record is written; every failure leaves the store untouched.
func (s *registrationService) Register(ctx context.Context, req *models.RegisterStudentRequest) (*models.RegisterStudentResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := NormalizeEmail(req.Email)

	if name == "" || email == "" || strings.TrimSpace(req.Password) == "" {
		return nil, &ValidationError{Reason: "name, email and password are required"}
	}
	if len(req.Password) < 6 {
		return nil, &ValidationError{Reason: "password too short"}
	}

	// Fast path: a cached marker means a previous registration already
	// claimed this email.
	if s.cache != nil {
		taken, err := s.cache.Exists(ctx, emailKey(email))
		if err == nil && taken {
			return nil, &ConflictError{Email: email}
		}
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		s.markRegistered(ctx, email)
		return nil, &ConflictError{Email: email}
	}
	if !errors.Is(err, repository.ErrStudentNotFound) {
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}

	// The hash is salted per call: registering the same password twice
	// yields different hashes that both verify against the plaintext.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var course *string
	if req.Course != nil {
		if trimmed := strings.TrimSpace(*req.Course); trimmed != "" {
			course = &trimmed
		}
	}

	student, err := s.repo.Create(ctx, name, email, string(hash), course)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost the check-then-insert race against a concurrent
			// registration; same outcome as a lookup hit.
			s.markRegistered(ctx, email)
			return nil, &ConflictError{Email: email}
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	s.markRegistered(ctx, email)

	return &models.RegisterStudentResponse{
		Message: "Student registered",
		Student: toStudentResponse(student),
	}, nil
}

// toStudentResponse builds the sanitized view. The response type has no
// password field, so the hash is excluded by construction.
func toStudentResponse(student *entities.Student) models.StudentResponse {
	return models.StudentResponse{
		ID:        student.ID,
		Name:      student.Name,
		Email:     student.Email,
		Course:    student.Course,
		CreatedAt: student.CreatedAt,
	}
}

// markRegistered records the email in the cache, best effort.
func (s *registrationService) markRegistered(ctx context.Context, email string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, emailKey(email), "registered", 1*time.Hour); err != nil {
		log.Printf("Warning: failed to cache registered email: %v", err)
	}
}

func emailKey(email string) string {
	return fmt.Sprintf("student:email:%s", email)
}
