// ABOUTME: Monotonic schema-version migrations for the workout log.
// ABOUTME: Applies each missing increment in order inside a transaction.
package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// currentSchemaVersion is the version a fully migrated database reports.
const currentSchemaVersion = 3

type migration struct {
	version int
	ddl     string
}

// All DDL is additive IF NOT EXISTS, so replaying a migration against a
// database that already has its objects (e.g. one freshly built by
// createTables) is harmless.
var migrations = []migration{
	{
		version: 1,
		ddl: `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			display_name TEXT NOT NULL,
			auth_provider TEXT,
			auth_id TEXT,
			weight_unit TEXT NOT NULL DEFAULT 'lbs',
			theme TEXT NOT NULL DEFAULT 'dark',
			created_at DATETIME NOT NULL
		);
		CREATE TABLE IF NOT EXISTS muscle_groups (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			display_order INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS workouts (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			muscle_group_id TEXT NOT NULL,
			is_custom INTEGER NOT NULL DEFAULT 0,
			created_by TEXT,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (muscle_group_id) REFERENCES muscle_groups(id),
			FOREIGN KEY (created_by) REFERENCES users(id)
		);
		CREATE TABLE IF NOT EXISTS weight_entries (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			workout_id TEXT NOT NULL,
			weight REAL NOT NULL,
			reps INTEGER NOT NULL DEFAULT 7,
			notes TEXT,
			recorded_at DATETIME NOT NULL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id),
			FOREIGN KEY (workout_id) REFERENCES workouts(id)
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_auth ON users(auth_provider, auth_id);
		CREATE INDEX IF NOT EXISTS idx_entries_user_workout ON weight_entries(user_id, workout_id);
		CREATE INDEX IF NOT EXISTS idx_entries_recorded ON weight_entries(recorded_at DESC);
		CREATE INDEX IF NOT EXISTS idx_entries_user_recorded ON weight_entries(user_id, recorded_at DESC);
		CREATE INDEX IF NOT EXISTS idx_workouts_name ON workouts(name);
		CREATE INDEX IF NOT EXISTS idx_workouts_muscle_group ON workouts(muscle_group_id);
		`,
	},
	{
		version: 2,
		ddl: `
		CREATE TABLE IF NOT EXISTS favorites (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			workout_id TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			UNIQUE (user_id, workout_id),
			FOREIGN KEY (user_id) REFERENCES users(id),
			FOREIGN KEY (workout_id) REFERENCES workouts(id)
		);
		CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id);
		`,
	},
	{
		// Enforce a single local guest row instead of "first row found".
		version: 3,
		ddl: `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_local
			ON users(auth_provider) WHERE auth_provider = 'local';
		`,
	},
}

// runMigrations reads the stored schema version and applies every missing
// increment in order, bumping the version row after each one. Safe to call
// on every startup regardless of prior state.
func (s *Store) runMigrations() error {
	version, err := s.SchemaVersion()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= version {
			continue
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(m.ddl); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %d: %w", m.version, err)
		}
		if err := setSchemaVersion(tx, m.version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.version, err)
		}

		version = m.version
	}

	return nil
}

// SchemaVersion returns the stored schema version, or 0 when the version
// table is empty or absent.
func (s *Store) SchemaVersion() (int, error) {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		if strings.Contains(err.Error(), "no such table") {
			return 0, nil
		}
		return 0, err
	}
	return version, nil
}

func setSchemaVersion(tx *sql.Tx, version int) error {
	result, err := tx.Exec("UPDATE schema_version SET version = ?", version)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version)
	}
	return err
}

// Reset drops everything, rebuilds the schema, and reseeds reference
// data. Development only.
func (s *Store) Reset() error {
	if err := s.DropAllTables(); err != nil {
		return err
	}
	if err := s.createTables(); err != nil {
		return fmt.Errorf("recreate tables: %w", err)
	}
	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("rerun migrations: %w", err)
	}
	return s.Seed()
}

// DropAllTables wipes the database structure. Development only.
func (s *Store) DropAllTables() error {
	tables := []string{
		"favorites",
		"weight_entries",
		"workouts",
		"muscle_groups",
		"users",
		"schema_version",
	}
	for _, table := range tables {
		if _, err := s.db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}
