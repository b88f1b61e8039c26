package admin

import (
	"context"

	"roastery-admin/internal/domain"
)

// Repository persists back-office accounts.
type Repository interface {
	Create(ctx context.Context, a domain.Admin) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}
