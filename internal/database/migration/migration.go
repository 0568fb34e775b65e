package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
	Args func(seed string) []any
}

var steps = []migrationStep{
	{
		Name: "create_table_products",
		SQL: `CREATE TABLE IF NOT EXISTS products (
  id         BIGSERIAL   PRIMARY KEY,
  name       TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_products_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_products_name ON products (name);`,
	},
	{
		Name: "seed_products",
		SQL:  `INSERT INTO products (name) VALUES ($1);`,
		Args: func(seed string) []any { return []any{seed} },
	},
}

// EnsureMigrated creates and seeds the products table unless it already exists.
// All steps run in one transaction so a failed seed leaves no table behind.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *zap.Logger, dbHost, seed string) error {
	start := time.Now()
	log := logger.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('public.products') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("detail", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to begin transaction: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to begin migration transaction: %w", err)
	}

	for _, step := range steps {
		stepStart := time.Now()
		var args []any
		if step.Args != nil {
			args = step.Args(seed)
		}
		if _, err := tx.ExecContext(ctx, step.SQL, args...); err != nil {
			_ = tx.Rollback()
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.String("error_message", err.Error()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	if err := tx.Commit(); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to commit: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to commit migration: %w", err)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
