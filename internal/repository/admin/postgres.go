package admin

import (
	"context"
	"errors"
	"io"
	"log"

	"roastery-admin/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const adminColumns = `id::text, name, email, password_hash, role, phone, department, photo_url, created_by, created_at`

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

func (r *postgresRepo) Create(ctx context.Context, a domain.Admin) (*domain.Admin, error) {
	const q = `
INSERT INTO admins (name, email, password_hash, role, phone, department, photo_url, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + adminColumns
	return r.scanAdmin(r.pool.QueryRow(
		ctx,
		q,
		a.Name,
		domain.NormalizeEmail(a.Email),
		a.PasswordHash,
		a.Role,
		a.Phone,
		a.Department,
		a.PhotoURL,
		a.CreatedBy,
	))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	const q = `
SELECT ` + adminColumns + `
FROM admins
WHERE email = lower(trim($1))
LIMIT 1
`
	return r.scanAdmin(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var a domain.Admin
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.Phone,
		&a.Department,
		&a.PhotoURL,
		&a.CreatedBy,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("admin repo: scan error=%v", err)
		return nil, err
	}
	return &a, nil
}
