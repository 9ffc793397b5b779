package pg

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies schema migrations from cfg.MigrationsPath using goose.
// goose works against database/sql, so the pool is adapted through pgx's
// stdlib bridge; the underlying connections stay shared with the pool.
//
// A missing or empty migrations path is not an error: services without
// migrations skip this step.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log *slog.Logger) error {
	if cfg.MigrationsPath == "" {
		return nil
	}
	if _, err := os.Stat(cfg.MigrationsPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrMigrationsDirNotFound, cfg.MigrationsPath)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%w: %v", ErrMigrationFailed, err)
	}

	if log != nil {
		log.InfoContext(ctx, "applying database migrations", "path", cfg.MigrationsPath)
	}

	if err := goose.UpContext(ctx, db, cfg.MigrationsPath); err != nil {
		return fmt.Errorf("%w: %v", ErrMigrationFailed, err)
	}

	return nil
}
