package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"payment-log/config"
	pgStorage "payment-log/internal/adapter/storage/postgres"
	"payment-log/internal/core/ports"
	"payment-log/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", "", "path to a YAML config file")
	steps := pflag.Bool("steps", false, "apply each step on its own instead of in one locked transaction")
	timeout := pflag.Duration("timeout", time.Minute, "give up after this long")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Component(logger.New(cfg.Log.Level, cfg.Log.Pretty), "migrator")

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, *steps, log); err != nil {
		log.Error().Err(err).Bool("steps", *steps).Msg("payments schema setup failed")
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, steps bool, log zerolog.Logger) error {
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	return apply(ctx, pgStorage.NewMigrator(pool, cfg.Migration.LockKey, log), steps)
}

func apply(ctx context.Context, migrator ports.SchemaMigrator, steps bool) error {
	if steps {
		return migrator.ApplySteps(ctx)
	}
	return migrator.Apply(ctx)
}
