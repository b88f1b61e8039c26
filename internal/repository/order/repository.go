package order

import (
	"context"

	"roastery-admin/internal/domain"
)

// Repository persists and fetches orders.
type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	// UpdateStatus overwrites status (and tracking ID when non-empty)
	// and bumps updated_at.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, trackingID string) error
	// SetLastNotifiedStatus records which status an email was sent for.
	SetLastNotifiedStatus(ctx context.Context, id string, status domain.OrderStatus) error
	// MarkStatsRepair flags an order whose customer stats increment failed.
	MarkStatsRepair(ctx context.Context, id string) error
}
