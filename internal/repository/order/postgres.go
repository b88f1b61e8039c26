package order

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"roastery-admin/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id::text, order_number, customer_id::text, address_id, items, total_cents, currency,
       status, tracking_id, notes, last_notified_status, needs_stats_repair, created_by, created_at, updated_at`

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

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO orders (order_number, customer_id, address_id, items, total_cents, currency, status, notes, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + orderColumns
	return r.scanOrder(r.pool.QueryRow(
		ctx,
		q,
		o.OrderNumber,
		o.CustomerID,
		o.AddressID,
		itemsJSON,
		o.TotalCents,
		o.Currency,
		o.Status,
		o.Notes,
		o.CreatedBy,
	))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
LIMIT 1
`
	return r.scanOrder(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, trackingID string) error {
	const q = `
UPDATE orders
SET status = $1,
    tracking_id = CASE WHEN $2 <> '' THEN $2 ELSE tracking_id END,
    updated_at = now()
WHERE id = $3
`
	cmd, err := r.pool.Exec(ctx, q, status, trackingID, id)
	if err != nil {
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SetLastNotifiedStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET last_notified_status = $1 WHERE id = $2`, status, id)
	if err != nil {
		r.logger.Printf("order repo: set notified status id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) MarkStatsRepair(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET needs_stats_repair = true WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("order repo: mark stats repair id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var itemsJSON []byte
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerID,
		&o.AddressID,
		&itemsJSON,
		&o.TotalCents,
		&o.Currency,
		&o.Status,
		&o.TrackingID,
		&o.Notes,
		&o.LastNotifiedStatus,
		&o.NeedsStatsRepair,
		&o.CreatedBy,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: scan error=%v", err)
		return nil, err
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			r.logger.Printf("order repo: decode items id=%s err=%v", o.ID, err)
			return nil, err
		}
	}
	return &o, nil
}
