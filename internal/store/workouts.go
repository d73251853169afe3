// ABOUTME: Workout catalog reads: search, browse by group, custom creation.
// ABOUTME: Search ranks prefix matches before substring matches.
package store

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/units"
)

const workoutColumns = "id, name, muscle_group_id, is_custom, created_by, created_at"

// MuscleGroups returns all muscle groups in display order.
func (s *Store) MuscleGroups() ([]*models.MuscleGroup, error) {
	rows, err := s.db.Query(`
		SELECT id, name, display_order
		FROM muscle_groups
		ORDER BY display_order ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("muscle groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.MuscleGroup
	for rows.Next() {
		var g models.MuscleGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan muscle group: %w", err)
		}
		groups = append(groups, &g)
	}
	return groups, rows.Err()
}

// MuscleGroupByID returns a muscle group, or nil when unknown.
func (s *Store) MuscleGroupByID(id string) (*models.MuscleGroup, error) {
	var g models.MuscleGroup
	err := s.db.QueryRow(
		"SELECT id, name, display_order FROM muscle_groups WHERE id = ?", id,
	).Scan(&g.ID, &g.Name, &g.DisplayOrder)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("muscle group by id: %w", err)
	}
	return &g, nil
}

// WorkoutByID returns a workout, or nil when unknown.
func (s *Store) WorkoutByID(id string) (*models.Workout, error) {
	row := s.db.QueryRow(
		"SELECT "+workoutColumns+" FROM workouts WHERE id = ?", id,
	)
	return scanWorkout(row)
}

// WorkoutsByMuscleGroup returns all workouts for a group, alphabetical.
func (s *Store) WorkoutsByMuscleGroup(groupID string) ([]*models.Workout, error) {
	rows, err := s.db.Query(`
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE muscle_group_id = ?
		ORDER BY name COLLATE NOCASE ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("workouts by muscle group: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// WorkoutCountByMuscleGroup returns how many workouts a group holds.
func (s *Store) WorkoutCountByMuscleGroup(groupID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM workouts WHERE muscle_group_id = ?", groupID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("workout count: %w", err)
	}
	return count, nil
}

// SearchWorkouts performs a case-insensitive substring match on workout
// names. Names starting with the query sort before names that merely
// contain it; each bucket is alphabetical. An empty query matches all
// workouts. LIKE metacharacters in the query match literally.
func (s *Store) SearchWorkouts(query string, limit int) ([]*models.Workout, error) {
	escaped := units.EscapeLike(query)

	sqlQuery := `
		SELECT ` + workoutColumns + `
		FROM workouts
		WHERE name LIKE '%' || ? || '%' ESCAPE '\'
		ORDER BY
			CASE WHEN name LIKE ? || '%' ESCAPE '\' THEN 0 ELSE 1 END,
			name COLLATE NOCASE ASC
	`
	args := []interface{}{escaped, escaped}
	if limit > 0 {
		sqlQuery += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("search workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// CreateCustomWorkout inserts a user-defined workout and returns it.
// Duplicate names are allowed; the catalog has no uniqueness rule.
func (s *Store) CreateCustomWorkout(name, muscleGroupID, userID string) (*models.Workout, error) {
	w := models.NewCustomWorkout(name, muscleGroupID, userID)
	if err := s.insertWorkout(w); err != nil {
		return nil, fmt.Errorf("create custom workout: %w", err)
	}
	return w, nil
}

// scanWorkout scans a single row into a Workout. Absence is nil.
func scanWorkout(row *sql.Row) (*models.Workout, error) {
	var w models.Workout
	var isCustom int
	var createdBy sql.NullString
	var createdAt string

	err := row.Scan(&w.ID, &w.Name, &w.MuscleGroupID, &isCustom, &createdBy, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan workout: %w", err)
	}

	w.IsCustom = isCustom != 0
	if createdBy.Valid {
		w.CreatedBy = &createdBy.String
	}
	w.CreatedAt, _ = units.ParseTime(createdAt)

	return &w, nil
}

// scanWorkouts scans multiple rows into a slice of Workouts.
func scanWorkouts(rows *sql.Rows) ([]*models.Workout, error) {
	var workouts []*models.Workout

	for rows.Next() {
		var w models.Workout
		var isCustom int
		var createdBy sql.NullString
		var createdAt string

		err := rows.Scan(&w.ID, &w.Name, &w.MuscleGroupID, &isCustom, &createdBy, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}

		w.IsCustom = isCustom != 0
		if createdBy.Valid {
			w.CreatedBy = &createdBy.String
		}
		w.CreatedAt, _ = units.ParseTime(createdAt)

		workouts = append(workouts, &w)
	}

	return workouts, rows.Err()
}
