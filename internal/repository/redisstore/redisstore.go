// Package redisstore keeps slots as plain Redis string keys.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces slot keys so several storefronts can share a Redis.
const DefaultPrefix = "foodcart:"

type Storage struct {
	client redis.UniversalClient
	prefix string
}

func New(client redis.UniversalClient, prefix string) (*Storage, error) {
	if client == nil {
		return nil, fmt.Errorf("client is nil")
	}

	return &Storage{client: client, prefix: prefix}, nil
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("client.Get: %w", err)
	}

	return value, true, nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}

	return nil
}
