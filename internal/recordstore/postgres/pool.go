// Package postgres is the pgx/v5-backed recordstore.Store reference
// implementation.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelforge/aggregator/internal/platform/config"
)

// Pool wraps a pgxpool.Pool for the record store.
type Pool struct {
	conn *pgxpool.Pool
}

// NewPool opens a connection pool from the database section of cfg.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*Pool, error) {
	connString := fmt.Sprintf(
		"host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Name, cfg.User, cfg.Password, cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &Pool{conn: pool}, nil
}

// Close releases all pooled connections.
func (p *Pool) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
