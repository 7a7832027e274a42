package db

import (
	"context"
	"fmt"
	"time"

	"hotel-reservation-api/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Date and timestamp columns are TEXT on purpose: check-in/check-out are
// exchanged as plain YYYY-MM-DD strings and created_at is caller-supplied,
// so the store never reinterprets them.
const schema = `
CREATE TABLE IF NOT EXISTS reservations (
    id             BIGSERIAL PRIMARY KEY,
    first_name     TEXT NOT NULL,
    last_name      TEXT NOT NULL,
    birthday       TEXT,
    check_in_date  TEXT NOT NULL,
    check_out_date TEXT NOT NULL,
    room_type      TEXT NOT NULL,
    extra_info     TEXT,
    status         TEXT NOT NULL,
    created_at     TEXT NOT NULL
);
`

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = 25
	poolCfg.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

// EnsureSchema creates the reservations table if it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
