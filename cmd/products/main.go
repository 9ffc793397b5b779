package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/bindkit/app/products"
	"github.com/dmitrymomot/bindkit/core/config"
	"github.com/dmitrymomot/bindkit/core/logger"
	"github.com/dmitrymomot/bindkit/core/server"
	"github.com/dmitrymomot/bindkit/integration/database/pg"
	"github.com/dmitrymomot/bindkit/integration/database/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg products.Config
	config.MustLoad(&cfg)

	log := logger.NewWithLevel(cfg.LogLevel)

	store, cleanup, err := buildStore(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize store", logger.Error(err))
		os.Exit(1)
	}
	defer cleanup()

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("failed to configure server", logger.Error(err))
		os.Exit(1)
	}

	routes := products.Routes(products.NewHandlers(store), log)

	if err := srv.Run(ctx, routes); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

// buildStore selects the store implementation from configuration: PostgreSQL
// when a connection URL is present, optionally wrapped in a Redis read-through
// cache, with the in-memory store as the zero-config default.
func buildStore(ctx context.Context, cfg products.Config, log *slog.Logger) (products.Store, func(), error) {
	cleanup := func() {}

	if cfg.PostgresURL == "" {
		return products.NewMemoryStore(), cleanup, nil
	}

	pgCfg := pg.Config{
		ConnectionString: cfg.PostgresURL,
		MigrationsPath:   cfg.MigrationsPath,
	}

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return nil, cleanup, err
	}
	cleanup = pool.Close

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		pool.Close()
		return nil, func() {}, err
	}

	var store products.Store = products.NewPostgresStore(pool)

	if cfg.RedisURL != "" {
		client, err := redis.Connect(ctx, redis.Config{ConnectionURL: cfg.RedisURL})
		if err != nil {
			pool.Close()
			return nil, func() {}, err
		}
		store = products.NewCachedStore(store, client, cfg.CacheTTL)
		cleanup = func() {
			_ = client.Close()
			pool.Close()
		}
	}

	return store, cleanup, nil
}
