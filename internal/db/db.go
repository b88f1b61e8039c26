package db

import (
	"context"
	"time"

	"roastery-admin/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const pingTimeout = 5 * time.Second

// poolConfig translates service configuration into pgx pool settings.
// A zero DBMaxConns keeps the driver's own default.
func poolConfig(cfg config.Config) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.DBConnString)
	if err != nil {
		return nil, err
	}
	if cfg.DBMaxConns > 0 {
		pc.MaxConns = cfg.DBMaxConns
	}
	pc.MaxConnIdleTime = cfg.DBConnIdleTime
	pc.MaxConnLifetime = cfg.DBConnLifetime
	return pc, nil
}

// Connect opens a pgx connection pool sized per cfg and verifies
// connectivity with a ping.
func Connect(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
