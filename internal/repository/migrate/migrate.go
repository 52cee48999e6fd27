// Package migrate creates and upgrades the database schema for both supported drivers.
package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Driver names as registered with database/sql.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type dbMigration struct {
	Version uint
	// Queries per driver name.
	Queries map[string][]string
}

// Execute runs the migration unless it already succeeded.
func (mig *dbMigration) Execute(ctx context.Context, db *sqlx.DB, logger *slog.Logger) error {
	queries, ok := mig.Queries[db.DriverName()]
	if !ok {
		return fmt.Errorf("migration %d: unsupported driver %q", mig.Version, db.DriverName())
	}
	var success bool
	err := db.QueryRowxContext(ctx, db.Rebind(`SELECT success FROM schema_migrations WHERE version = ?`), mig.Version).Scan(&success)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("fetch migration %d status: %w", mig.Version, err)
	}
	if success {
		return nil
	}
	logger.Info("executing db migration", "version", mig.Version, "queries", len(queries))
	for i, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			_ = mig.record(ctx, db, false)
			return fmt.Errorf("migration %d query %d: %w", mig.Version, i+1, err)
		}
	}
	return mig.record(ctx, db, true)
}

func (mig *dbMigration) record(ctx context.Context, db *sqlx.DB, success bool) error {
	query := db.Rebind(`INSERT INTO schema_migrations (version, success) VALUES (?, ?)
		ON CONFLICT (version) DO UPDATE SET success = excluded.success`)
	_, err := db.ExecContext(ctx, query, mig.Version, success)
	return err
}

// Run executes all pending migrations on db.
func Run(ctx context.Context, db *sqlx.DB, logger *slog.Logger) error {
	query := `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER NOT NULL PRIMARY KEY,
		success BOOLEAN NOT NULL DEFAULT FALSE
	)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}
	for _, mig := range migrations {
		if err := mig.Execute(ctx, db, logger); err != nil {
			logger.Error("db migration failed", "version", mig.Version, "err", err)
			return err
		}
	}
	return nil
}

var migrations = []dbMigration{
	{
		Version: 1,
		Queries: map[string][]string{
			DriverPostgres: {
				`CREATE TABLE IF NOT EXISTS accounts (
					id SERIAL PRIMARY KEY,
					email VARCHAR(255) NOT NULL UNIQUE,
					password_hash VARCHAR(255) NOT NULL,
					roles TEXT[] NOT NULL DEFAULT '{}',
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				)`,
				`CREATE TABLE IF NOT EXISTS events (
					id SERIAL PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					begin_enrollment_date_time TIMESTAMPTZ NOT NULL,
					close_enrollment_date_time TIMESTAMPTZ NOT NULL,
					begin_event_date_time TIMESTAMPTZ NOT NULL,
					end_event_date_time TIMESTAMPTZ NOT NULL,
					location VARCHAR(255),
					base_price INTEGER NOT NULL DEFAULT 0,
					max_price INTEGER NOT NULL DEFAULT 0,
					limit_of_enrollment INTEGER NOT NULL DEFAULT 0,
					offline BOOLEAN NOT NULL DEFAULT FALSE,
					free BOOLEAN NOT NULL DEFAULT FALSE,
					event_status VARCHAR(16) NOT NULL DEFAULT 'DRAFT',
					manager_id INTEGER REFERENCES accounts(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				)`,
				`CREATE INDEX IF NOT EXISTS idx_events_manager ON events (manager_id)`,
			},
			DriverSQLite: {
				`CREATE TABLE IF NOT EXISTS accounts (
					id INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
					email VARCHAR(255) NOT NULL UNIQUE,
					password_hash VARCHAR(255) NOT NULL,
					roles VARCHAR(255) NOT NULL DEFAULT '',
					created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE TABLE IF NOT EXISTS events (
					id INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
					name VARCHAR(255) NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					begin_enrollment_date_time DATETIME NOT NULL,
					close_enrollment_date_time DATETIME NOT NULL,
					begin_event_date_time DATETIME NOT NULL,
					end_event_date_time DATETIME NOT NULL,
					location VARCHAR(255),
					base_price INTEGER NOT NULL DEFAULT 0,
					max_price INTEGER NOT NULL DEFAULT 0,
					limit_of_enrollment INTEGER NOT NULL DEFAULT 0,
					offline BOOLEAN NOT NULL DEFAULT 0,
					free BOOLEAN NOT NULL DEFAULT 0,
					event_status VARCHAR(16) NOT NULL DEFAULT 'DRAFT',
					manager_id INTEGER REFERENCES accounts(id),
					created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX IF NOT EXISTS idx_events_manager ON events (manager_id)`,
			},
		},
	},
}
