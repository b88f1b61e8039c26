package product

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

const productColumns = `id::text, name, category, roast_level, weight_variants, prices, is_active,
       stock_qty, image_url, tasting_notes, origin, created_at, updated_at`

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

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
LIMIT 1
`
	return r.scanProduct(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC
`
	return r.queryProducts(ctx, q)
}

func (r *postgresRepo) ListActive(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE is_active
ORDER BY created_at DESC
`
	return r.queryProducts(ctx, q)
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	variantsJSON, err := json.Marshal(p.WeightVariants)
	if err != nil {
		return nil, err
	}
	pricesJSON, err := json.Marshal(p.Prices)
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO products (name, category, roast_level, weight_variants, prices, is_active, stock_qty, image_url, tasting_notes, origin)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (name, category) DO UPDATE SET
    roast_level = EXCLUDED.roast_level,
    weight_variants = EXCLUDED.weight_variants,
    prices = EXCLUDED.prices,
    is_active = EXCLUDED.is_active,
    stock_qty = EXCLUDED.stock_qty,
    image_url = EXCLUDED.image_url,
    tasting_notes = EXCLUDED.tasting_notes,
    origin = EXCLUDED.origin,
    updated_at = now()
RETURNING ` + productColumns
	return r.scanProduct(r.pool.QueryRow(
		ctx,
		q,
		p.Name,
		p.Category,
		p.RoastLevel,
		variantsJSON,
		pricesJSON,
		p.IsActive,
		p.StockQty,
		p.ImageURL,
		p.TastingNotes,
		p.Origin,
	))
}

func (r *postgresRepo) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE products SET is_active = $1, updated_at = now() WHERE id = $2`, active, id)
	if err != nil {
		r.logger.Printf("product repo: set active id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) queryProducts(ctx context.Context, q string) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var variantsJSON, pricesJSON []byte
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.RoastLevel,
		&variantsJSON,
		&pricesJSON,
		&p.IsActive,
		&p.StockQty,
		&p.ImageURL,
		&p.TastingNotes,
		&p.Origin,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: scan error=%v", err)
		return nil, err
	}
	if len(variantsJSON) > 0 {
		if err := json.Unmarshal(variantsJSON, &p.WeightVariants); err != nil {
			r.logger.Printf("product repo: decode variants id=%s err=%v", p.ID, err)
			return nil, err
		}
	}
	if len(pricesJSON) > 0 {
		if err := json.Unmarshal(pricesJSON, &p.Prices); err != nil {
			r.logger.Printf("product repo: decode prices id=%s err=%v", p.ID, err)
			return nil, err
		}
	}
	return &p, nil
}
