package customer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"roastery-admin/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `id::text, name, email, phone, addresses, total_orders, total_spent_cents, created_at`

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

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	addrJSON, err := json.Marshal(addressesOrEmpty(c.Addresses))
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO customers (name, email, phone, addresses, total_orders, total_spent_cents)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + customerColumns
	return r.scanCustomer(r.pool.QueryRow(
		ctx,
		q,
		c.Name,
		domain.NormalizeEmail(c.Email),
		domain.NormalizePhone(c.Phone),
		addrJSON,
		c.TotalOrders,
		c.TotalSpentCents,
	))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customers
WHERE id = $1
LIMIT 1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customers
WHERE email = lower(trim($1)) AND email <> ''
LIMIT 1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customers
WHERE phone = trim($1) AND phone <> ''
LIMIT 1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, phone))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customers
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("customer repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		c, err := r.scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("customer repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) UpdateAddresses(ctx context.Context, id string, addresses []domain.Address) error {
	addrJSON, err := json.Marshal(addressesOrEmpty(addresses))
	if err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, `UPDATE customers SET addresses = $1 WHERE id = $2`, addrJSON, id)
	if err != nil {
		r.logger.Printf("customer repo: update addresses id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) IncrementStats(ctx context.Context, id string, amountCents int64) error {
	const q = `
UPDATE customers
SET total_orders = total_orders + 1,
    total_spent_cents = total_spent_cents + $1
WHERE id = $2
`
	cmd, err := r.pool.Exec(ctx, q, amountCents, id)
	if err != nil {
		r.logger.Printf("customer repo: increment stats id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	var addrJSON []byte
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&addrJSON,
		&c.TotalOrders,
		&c.TotalSpentCents,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	if len(addrJSON) > 0 {
		if err := json.Unmarshal(addrJSON, &c.Addresses); err != nil {
			r.logger.Printf("customer repo: decode addresses id=%s err=%v", c.ID, err)
			return nil, err
		}
	}
	return &c, nil
}

func addressesOrEmpty(addresses []domain.Address) []domain.Address {
	if addresses == nil {
		return []domain.Address{}
	}
	return addresses
}
