package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"exampleapi/internal/model"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_examples",
		SQL: `CREATE TABLE IF NOT EXISTS examples (
  id          INTEGER PRIMARY KEY CHECK (id >= 0),
  title       TEXT    NOT NULL,
  url         TEXT    NOT NULL,
  description TEXT    NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_index_examples_title",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_examples_title ON examples (title);`,
	},
}

const seedSQL = `INSERT INTO examples (id, title, url, description)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING`

// EnsureMigrated creates the examples table and loads the seed rows in one
// transaction when the table does not exist yet. An existing table is left untouched, so restarts
// never resurrect deleted seed rows.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string, seeds []model.Example) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('public.examples') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	// schema and seed rows commit together; a failed seed must not leave a
	// table that the sentinel check would later treat as migrated
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("db_migration_failed", zap.String("status", "error"), zap.Error(err))
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
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

	for _, e := range seeds {
		if _, err := tx.ExecContext(ctx, seedSQL, e.ID, e.Title, e.URL, e.Description); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", "seed_examples"),
				zap.Int("example_id", e.ID),
				zap.Error(err),
			)
			return fmt.Errorf("seed example %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("db_migration_failed", zap.String("status", "error"), zap.Error(err))
		return fmt.Errorf("commit migration: %w", err)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int("seeded", len(seeds)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
