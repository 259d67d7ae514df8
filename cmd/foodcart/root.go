package main

import (
	"github.com/nikolayk812/foodcart-demo/internal/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:          "foodcart",
		Short:        "Browse restaurants, fill a cart and place an order",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.Storage, "storage", cfg.Storage, "slot storage: memory, file, postgres or redis")
	flags.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory of the file storage")
	flags.StringVar(&cfg.PostgresDSN, "postgres-dsn", cfg.PostgresDSN, "PostgreSQL connection string")
	flags.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address")
	flags.StringVar(&cfg.RedisPrefix, "redis-prefix", cfg.RedisPrefix, "prefix of Redis slot keys")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	root.AddCommand(
		newRestaurantsCmd(),
		newMenuCmd(),
		newAddCmd(&cfg),
		newRemoveCmd(&cfg),
		newUpdateCmd(&cfg),
		newAdjustCmd(&cfg),
		newClearCmd(&cfg),
		newCartCmd(&cfg),
		newCheckoutCmd(&cfg),
		newOrderCmd(&cfg),
	)

	return root
}

// runWithApp opens the cart wiring for the duration of fn.
func runWithApp(cfg *config.Config, fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		a, err := newApp(cmd.Context(), *cfg)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := a.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()

		return fn(cmd, args, a)
	}
}
