package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"roastery-admin/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type adminRepo interface {
	Create(ctx context.Context, a domain.Admin) (*domain.Admin, error)
}

// Service creates back-office accounts.
type Service struct {
	repo        adminRepo
	passwordMin int
}

// New creates a Service with sane defaults.
func New(repo adminRepo) *Service {
	return &Service{repo: repo, passwordMin: 6}
}

// CreateInput captures fields expected by the admin-creation endpoint.
type CreateInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
	PhotoURL   string `json:"photoURL,omitempty"`
	CreatedBy  string `json:"createdBy,omitempty"`
}

// Create validates input, hashes the password, and persists the account.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Admin, error) {
	name := strings.TrimSpace(in.Name)
	email := domain.NormalizeEmail(in.Email)
	password := strings.TrimSpace(in.Password)

	if name == "" {
		return nil, errors.New("name required")
	}
	if email == "" {
		return nil, errors.New("email required")
	}
	if password == "" {
		return nil, errors.New("password required")
	}
	if len(password) < s.passwordMin {
		return nil, fmt.Errorf("password must be at least %d characters", s.passwordMin)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = "staff"
	}

	return s.repo.Create(ctx, domain.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		Phone:        strings.TrimSpace(in.Phone),
		Department:   strings.TrimSpace(in.Department),
		PhotoURL:     strings.TrimSpace(in.PhotoURL),
		CreatedBy:    strings.TrimSpace(in.CreatedBy),
	})
}
