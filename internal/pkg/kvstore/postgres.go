package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps keys in the app_state table created by the migrations.
// The pool is owned by the caller and is not closed by Close.
type PostgresStore struct {
	db *pgxpool.Pool
	ns namespace
}

// NewPostgresStore wraps an open pool.
func NewPostgresStore(db *pgxpool.Pool, ns string) *PostgresStore {
	return &PostgresStore{db: db, ns: namespace(ns)}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := s.db.QueryRow(ctx, `SELECT value FROM app_state WHERE key = $1`, s.ns.key(key)).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("postgres get %s: %w", key, err)
	}
	return v, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO app_state (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		s.ns.key(key), value)
	if err != nil {
		return fmt.Errorf("postgres set %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM app_state WHERE key = $1`, s.ns.key(key)); err != nil {
		return fmt.Errorf("postgres delete %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT key FROM app_state WHERE key LIKE $1 ORDER BY key`, s.ns.prefix()+"%")
	if err != nil {
		return nil, fmt.Errorf("postgres keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("postgres keys scan: %w", err)
		}
		if stripped, ok := s.ns.strip(k); ok {
			keys = append(keys, stripped)
		}
	}
	return keys, rows.Err()
}

func (s *PostgresStore) Close() error { return nil }
