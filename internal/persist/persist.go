// Package persist binds a cart store to durable storage: load once on
// start, save the cart slice after every mutation.
package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/nikolayk812/foodcart-demo/internal/port"
	"github.com/nikolayk812/foodcart-demo/internal/store"
	"go.uber.org/zap"
)

// Bind seeds s from repo and subscribes a saver, returning the function that
// detaches it. Call Bind before any view subscribes so views start from the
// restored cart. An undecodable slot is logged and ignored; only a failing
// storage read is returned. Save failures are logged, never surfaced.
func Bind(ctx context.Context, s *store.Store, repo port.CartRepository, logger *zap.Logger) (func(), error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cart, ok, err := repo.LoadCart(ctx)
	switch {
	case errors.Is(err, port.ErrCorruptSlot):
		logger.Warn("ignoring unreadable cart slot", zap.Error(err))
	case err != nil:
		return nil, fmt.Errorf("repo.LoadCart: %w", err)
	case ok:
		s.SetCart(cart.Items)
		logger.Debug("cart restored", zap.Int("lines", len(cart.Items)))
	}

	unsubscribe := s.Subscribe(func(cart domain.Cart) {
		if err := repo.SaveCart(ctx, cart); err != nil {
			logger.Warn("cart not persisted", zap.Error(err))
		}
	})

	return unsubscribe, nil
}
