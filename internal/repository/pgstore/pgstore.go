// Package pgstore keeps slots in the kv_slots table of a PostgreSQL database.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodcart-demo/internal/migrations"
)

const (
	getSlotSQL = `SELECT value FROM kv_slots WHERE key = $1`

	upsertSlotSQL = `
INSERT INTO kv_slots (key, value, created_at, updated_at)
VALUES ($1, $2, NOW(), NOW())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, updated_at = NOW()`

	deleteSlotSQL = `DELETE FROM kv_slots WHERE key = $1`
)

type Storage struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) (*Storage, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &Storage{pool: pool}, nil
}

// EnsureSchema creates the kv_slots table when it does not exist yet.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, migrations.KVSlots); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	var value []byte
	err := s.pool.QueryRow(ctx, getSlotSQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return value, true, nil
}

// Set overwrites the slot. The upsert is atomic per key.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if _, err := s.pool.Exec(ctx, upsertSlotSQL, key, value); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if _, err := s.pool.Exec(ctx, deleteSlotSQL, key); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}
