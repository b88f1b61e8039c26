package webhook

import (
	"context"

	"roastery-admin/internal/domain"
)

// Repository stores raw inbound webhook captures.
type Repository interface {
	Create(ctx context.Context, e domain.WebhookEvent) (*domain.WebhookEvent, error)
}
