// Package migration bootstraps the schema on first boot. It is deliberately
// minimal: a sentinel check plus ordered idempotent steps, no down
// migrations and no version table.
package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type step struct {
	name string
	sql  string
}

var steps = []step{
	{
		name: "create_extension_uuid_ossp",
		sql:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		name: "create_table_stress_level_records",
		sql: `CREATE TABLE IF NOT EXISTS stress_level_records (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id      TEXT        NOT NULL,
  stress_level SMALLINT    NOT NULL CHECK (stress_level BETWEEN 0 AND 5),
  image        TEXT,
  timestamp    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		name: "create_index_stress_level_records_user_timestamp",
		sql:  `CREATE INDEX IF NOT EXISTS idx_stress_level_records_user_timestamp ON stress_level_records (user_id, timestamp DESC);`,
	},
}

// EnsureMigrated runs the schema steps unless the records table already
// exists. Steps are individually idempotent, so a crash mid-run is repaired
// by the next boot.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	var exists bool
	sentinel := "SELECT to_regclass('public.stress_level_records') IS NOT NULL"
	if err := db.QueryRowContext(ctx, sentinel).Scan(&exists); err != nil {
		logEvent(loc, "error", "db_migration_failed", dbHost, map[string]any{
			"error_message": err.Error(),
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logEvent(loc, "info", "db_migration_skip", dbHost, map[string]any{
			"msg": "schema already exists, skipping migration",
		})
		return nil
	}

	for _, s := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, s.sql); err != nil {
			logEvent(loc, "error", "db_migration_failed", dbHost, map[string]any{
				"migration_step": s.name,
				"error_message":  err.Error(),
				"duration_ms":    time.Since(start).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", s.name, err)
		}
		logEvent(loc, "info", "db_migration_step", dbHost, map[string]any{
			"migration_step":   s.name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logEvent(loc, "info", "db_migration_success", dbHost, map[string]any{
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

func logEvent(loc *time.Location, level, event, dbHost string, fields map[string]any) {
	entry := map[string]any{
		"ts":        time.Now().In(loc).Format(time.RFC3339Nano),
		"level":     level,
		"component": "database",
		"event":     event,
		"db_host":   dbHost,
	}
	for k, v := range fields {
		entry[k] = v
	}

	b, err := json.Marshal(entry)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
