// Package postgres is the kv.Store backend used when DATABASE_URL is set,
// for installations that keep state in a shared server instead of a local
// file.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		payload TEXT NOT NULL
	)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var payload string
	err := s.Pool.QueryRow(ctx, `SELECT payload FROM state WHERE key = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select state: %w", err)
	}
	return payload, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.Pool.Exec(ctx, `INSERT INTO state (key, payload) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET payload = excluded.payload`, key, value)
	if err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}
	return nil
}

func (s *Store) Close() { s.Pool.Close() }
