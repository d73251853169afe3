// ABOUTME: SQLite schema definition for the workout log.
// ABOUTME: Defines users, muscle_groups, workouts, weight_entries, favorites.
package store

// createTables brings a database to the full current structure. Everything
// is CREATE IF NOT EXISTS, so it is safe on every startup. Foreign keys are
// declared but only enforced because Open turns PRAGMA foreign_keys on.
func (s *Store) createTables() error {
	schema := `
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

	CREATE TABLE IF NOT EXISTS favorites (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		workout_id TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE (user_id, workout_id),
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (workout_id) REFERENCES workouts(id)
	);

	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_users_auth ON users(auth_provider, auth_id);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_users_local
		ON users(auth_provider) WHERE auth_provider = 'local';
	CREATE INDEX IF NOT EXISTS idx_entries_user_workout ON weight_entries(user_id, workout_id);
	CREATE INDEX IF NOT EXISTS idx_entries_recorded ON weight_entries(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_entries_user_recorded ON weight_entries(user_id, recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_workouts_name ON workouts(name);
	CREATE INDEX IF NOT EXISTS idx_workouts_muscle_group ON workouts(muscle_group_id);
	CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id);
	`

	_, err := s.db.Exec(schema)
	return err
}
