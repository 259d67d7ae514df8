package port

import (
	"context"
	"errors"
)

// SlotStorage is a local key-value store holding serialized slots.
type SlotStorage interface {
	// Get returns false when no value is stored under key.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ErrCorruptSlot is wrapped by repositories when a slot was read but its
// content could not be decoded.
var ErrCorruptSlot = errors.New("slot is corrupt")
