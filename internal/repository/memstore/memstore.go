// Package memstore keeps slots in process memory.
package memstore

import (
	"context"
	"slices"
	"sync"
)

type Storage struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func New() *Storage {
	return &Storage{slots: make(map[string][]byte)}
}

func (s *Storage) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	return slices.Clone(value), ok, nil
}

func (s *Storage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = slices.Clone(value)
	return nil
}

func (s *Storage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}
