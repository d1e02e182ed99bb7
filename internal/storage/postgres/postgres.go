// Package postgres provides a pgx-backed snapshot store for shared or
// managed deployments. It maps the opaque key/value snapshot surface onto a
// single table and keeps the SQL explicit.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store holds a pgx connection pool. All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string, verifies
// connectivity, and ensures the snapshot table exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if _, err := pool.Exec(ctx, `
		create table if not exists snapshots (
			key        text primary key,
			data       jsonb not null,
			updated_at timestamptz not null default now()
		)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage/postgres: schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Load implements storage.Store.
func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `select data from snapshots where key = $1`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Save implements storage.Store.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.pool.Exec(ctx, `
		insert into snapshots (key, data, updated_at) values ($1, $2, now())
		on conflict (key) do update set data = excluded.data, updated_at = now()`,
		key, data)
	return err
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// Close releases the underlying pool.
func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
