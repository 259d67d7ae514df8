package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodcart-demo/internal/checkout"
	"github.com/nikolayk812/foodcart-demo/internal/config"
	"github.com/nikolayk812/foodcart-demo/internal/logger"
	"github.com/nikolayk812/foodcart-demo/internal/persist"
	"github.com/nikolayk812/foodcart-demo/internal/port"
	"github.com/nikolayk812/foodcart-demo/internal/repository"
	"github.com/nikolayk812/foodcart-demo/internal/repository/filestore"
	"github.com/nikolayk812/foodcart-demo/internal/repository/memstore"
	"github.com/nikolayk812/foodcart-demo/internal/repository/pgstore"
	"github.com/nikolayk812/foodcart-demo/internal/repository/redisstore"
	"github.com/nikolayk812/foodcart-demo/internal/store"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const serviceName = "foodcart"

// app is the wiring shared by the cart commands.
type app struct {
	logger   *zap.Logger
	store    *store.Store
	checkout *checkout.Service

	closers []func() error
}

func newApp(ctx context.Context, cfg config.Config) (_ *app, err error) {
	l, err := logger.New(logger.Options{Service: serviceName, Level: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("logger.New: %w", err)
	}

	a := &app{logger: l}
	defer func() {
		if err != nil {
			err = errors.Join(err, a.Close())
		}
	}()

	storage, err := a.openStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("openStorage: %w", err)
	}

	carts, err := repository.NewCart(storage)
	if err != nil {
		return nil, fmt.Errorf("repository.NewCart: %w", err)
	}

	orders, err := repository.NewOrder(storage)
	if err != nil {
		return nil, fmt.Errorf("repository.NewOrder: %w", err)
	}

	a.store = store.New()

	unbind, err := persist.Bind(ctx, a.store, carts, l)
	if err != nil {
		return nil, fmt.Errorf("persist.Bind: %w", err)
	}
	a.closers = append(a.closers, func() error {
		unbind()
		return nil
	})

	a.checkout, err = checkout.NewService(a.store, orders, checkout.WithLogger(l))
	if err != nil {
		return nil, fmt.Errorf("checkout.NewService: %w", err)
	}

	return a, nil
}

func (a *app) openStorage(ctx context.Context, cfg config.Config) (port.SlotStorage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return memstore.New(), nil

	case config.StorageFile:
		return filestore.New(cfg.Dir)

	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		a.closers = append(a.closers, func() error {
			pool.Close()
			return nil
		})

		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("pool.Ping: %w", err)
		}

		storage, err := pgstore.New(pool)
		if err != nil {
			return nil, fmt.Errorf("pgstore.New: %w", err)
		}

		if err := storage.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("storage.EnsureSchema: %w", err)
		}

		return storage, nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		a.closers = append(a.closers, client.Close)

		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("client.Ping: %w", err)
		}

		return redisstore.New(client, cfg.RedisPrefix)

	default:
		return nil, fmt.Errorf("storage[%s] is not supported", cfg.Storage)
	}
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil

	// syncing stderr fails on some terminals
	_ = a.logger.Sync()

	return errors.Join(errs...)
}
