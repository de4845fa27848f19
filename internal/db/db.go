package db

import (
	"context"
	"fmt"
	"time"

	"blogger/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresConnection opens the pool shared by every repository and
// pings it once. The caller owns the pool and must Close it on shutdown.
func NewPostgresConnection(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pcfg.MaxConns = cfg.DbMaxConns
	pcfg.ConnConfig.ConnectTimeout = cfg.DbConnectTimeout
	pcfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return pool, nil
}
