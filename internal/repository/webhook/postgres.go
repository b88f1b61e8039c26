package webhook

import (
	"context"
	"encoding/json"
	"io"
	"log"

	"roastery-admin/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, e domain.WebhookEvent) (*domain.WebhookEvent, error) {
	headersJSON, err := json.Marshal(e.Headers)
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO webhook_events (headers, body)
VALUES ($1, $2)
RETURNING id::text, received_at
`
	saved := e
	if err := r.pool.QueryRow(ctx, q, headersJSON, e.Body).Scan(&saved.ID, &saved.ReceivedAt); err != nil {
		r.logger.Printf("webhook repo: insert error=%v", err)
		return nil, err
	}
	return &saved, nil
}
