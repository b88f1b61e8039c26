package customer

import (
	"context"

	"roastery-admin/internal/domain"
)

// Repository persists and fetches customers.
type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	// UpdateAddresses overwrites the embedded address array in place.
	UpdateAddresses(ctx context.Context, id string, addresses []domain.Address) error
	// IncrementStats bumps total_orders by one and total_spent_cents by
	// amountCents in a single statement, atomic at the store level.
	IncrementStats(ctx context.Context, id string, amountCents int64) error
}
