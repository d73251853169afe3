// ABOUTME: WeightEntry reads and writes: log, history, PR, recent, delete.
// ABOUTME: All operations are user-scoped; foreign ownership silently no-ops.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/units"
)

const entryColumns = "id, user_id, workout_id, weight, reps, notes, recorded_at, created_at"

// RecentWorkout pairs a workout with the user's single most recent entry
// against it, for the "recent workouts" screen.
type RecentWorkout struct {
	Workout models.Workout
	Entry   models.WeightEntry
}

// LogEntry persists a new entry. Generated fields (id, timestamps, default
// reps) come from the models.NewWeightEntry constructor; weight is stored
// as given, so kilogram input must be converted by the caller first.
func (s *Store) LogEntry(e *models.WeightEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO weight_entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.WorkoutID, e.Weight, e.Reps, e.Notes,
		units.FormatTime(e.RecordedAt), units.FormatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("log entry: %w", err)
	}
	return nil
}

// WorkoutHistory returns the user's entries for a workout, newest first.
func (s *Store) WorkoutHistory(workoutID, userID string, limit int) ([]*models.WeightEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM weight_entries
		WHERE workout_id = ? AND user_id = ?
		ORDER BY recorded_at DESC, created_at DESC
	`
	args := []interface{}{workoutID, userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("workout history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// LastEntry returns the user's most recent entry for a workout, or nil.
func (s *Store) LastEntry(userID, workoutID string) (*models.WeightEntry, error) {
	row := s.db.QueryRow(`
		SELECT `+entryColumns+`
		FROM weight_entries
		WHERE user_id = ? AND workout_id = ?
		ORDER BY recorded_at DESC, created_at DESC
		LIMIT 1`,
		userID, workoutID,
	)
	return scanEntry(row)
}

// PersonalRecord returns the user's maximum-weight entry for a workout, or
// nil. Ties on weight resolve to the earliest recorded entry; history
// display flags every entry matching the PR weight, so ties render fine.
func (s *Store) PersonalRecord(userID, workoutID string) (*models.WeightEntry, error) {
	row := s.db.QueryRow(`
		SELECT `+entryColumns+`
		FROM weight_entries
		WHERE user_id = ? AND workout_id = ?
		ORDER BY weight DESC, recorded_at ASC, id ASC
		LIMIT 1`,
		userID, workoutID,
	)
	return scanEntry(row)
}

// RecentWorkouts returns one row per distinct workout the user has logged,
// each carrying that workout's most recent entry, ordered by that entry's
// recorded_at descending. Relies on SQLite resolving bare columns to the
// row holding MAX(recorded_at) within each group.
func (s *Store) RecentWorkouts(userID string, limit int) ([]*RecentWorkout, error) {
	query := `
		SELECT w.id, w.name, w.muscle_group_id, w.is_custom, w.created_by, w.created_at,
		       e.id, e.user_id, e.workout_id, e.weight, e.reps, e.notes,
		       MAX(e.recorded_at) AS recorded_at, e.created_at
		FROM weight_entries e
		JOIN workouts w ON w.id = e.workout_id
		WHERE e.user_id = ?
		GROUP BY e.workout_id
		ORDER BY recorded_at DESC
	`
	args := []interface{}{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("recent workouts: %w", err)
	}
	defer rows.Close()

	var recents []*RecentWorkout
	for rows.Next() {
		var rw RecentWorkout
		var isCustom int
		var createdBy, notes sql.NullString
		var wCreatedAt, recordedAt, eCreatedAt string

		err := rows.Scan(
			&rw.Workout.ID, &rw.Workout.Name, &rw.Workout.MuscleGroupID,
			&isCustom, &createdBy, &wCreatedAt,
			&rw.Entry.ID, &rw.Entry.UserID, &rw.Entry.WorkoutID,
			&rw.Entry.Weight, &rw.Entry.Reps, &notes, &recordedAt, &eCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan recent workout: %w", err)
		}

		rw.Workout.IsCustom = isCustom != 0
		if createdBy.Valid {
			rw.Workout.CreatedBy = &createdBy.String
		}
		rw.Workout.CreatedAt, _ = units.ParseTime(wCreatedAt)
		if notes.Valid {
			rw.Entry.Notes = &notes.String
		}
		rw.Entry.RecordedAt, _ = units.ParseTime(recordedAt)
		rw.Entry.CreatedAt, _ = units.ParseTime(eCreatedAt)

		recents = append(recents, &rw)
	}

	return recents, rows.Err()
}

// EntriesInDateRange returns the user's entries recorded in [from, to],
// newest first.
func (s *Store) EntriesInDateRange(userID string, from, to time.Time) ([]*models.WeightEntry, error) {
	rows, err := s.db.Query(`
		SELECT `+entryColumns+`
		FROM weight_entries
		WHERE user_id = ? AND recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at DESC`,
		userID, units.FormatTime(from), units.FormatTime(to),
	)
	if err != nil {
		return nil, fmt.Errorf("entries in date range: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// DeleteEntry removes an entry if it belongs to userID. Returns whether a
// row was removed; unknown ids and foreign ownership both report false.
func (s *Store) DeleteEntry(entryID, userID string) (bool, error) {
	result, err := s.db.Exec(
		"DELETE FROM weight_entries WHERE id = ? AND user_id = ?",
		entryID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}
	return affected > 0, nil
}

// EntryUpdate carries the fields an UpdateEntry call may change.
type EntryUpdate struct {
	Weight *float64
	Reps   *int
	Notes  *string
}

// UpdateEntry applies a partial update scoped to the owning user. Returns
// false when no fields were supplied or no owned row matched.
func (s *Store) UpdateEntry(entryID, userID string, upd EntryUpdate) (bool, error) {
	var sets []string
	var args []interface{}

	if upd.Weight != nil {
		sets = append(sets, "weight = ?")
		args = append(args, *upd.Weight)
	}
	if upd.Reps != nil {
		sets = append(sets, "reps = ?")
		args = append(args, *upd.Reps)
	}
	if upd.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *upd.Notes)
	}
	if len(sets) == 0 {
		return false, nil
	}

	args = append(args, entryID, userID)
	result, err := s.db.Exec(
		"UPDATE weight_entries SET "+strings.Join(sets, ", ")+" WHERE id = ? AND user_id = ?",
		args...,
	)
	if err != nil {
		return false, fmt.Errorf("update entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update entry: %w", err)
	}
	return affected > 0, nil
}

// scanEntry scans a single row into a WeightEntry. Absence is nil, not an
// error.
func scanEntry(row *sql.Row) (*models.WeightEntry, error) {
	var e models.WeightEntry
	var notes sql.NullString
	var recordedAt, createdAt string

	err := row.Scan(&e.ID, &e.UserID, &e.WorkoutID, &e.Weight, &e.Reps,
		&notes, &recordedAt, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	if notes.Valid {
		e.Notes = &notes.String
	}
	e.RecordedAt, _ = units.ParseTime(recordedAt)
	e.CreatedAt, _ = units.ParseTime(createdAt)

	return &e, nil
}

// scanEntries scans multiple rows into a slice of WeightEntries.
func scanEntries(rows *sql.Rows) ([]*models.WeightEntry, error) {
	var entries []*models.WeightEntry

	for rows.Next() {
		var e models.WeightEntry
		var notes sql.NullString
		var recordedAt, createdAt string

		err := rows.Scan(&e.ID, &e.UserID, &e.WorkoutID, &e.Weight, &e.Reps,
			&notes, &recordedAt, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		if notes.Valid {
			e.Notes = &notes.String
		}
		e.RecordedAt, _ = units.ParseTime(recordedAt)
		e.CreatedAt, _ = units.ParseTime(createdAt)

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
