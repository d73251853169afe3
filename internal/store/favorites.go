// ABOUTME: Favorite marker operations: add, remove, toggle, list.
// ABOUTME: Toggle runs in a transaction so the flip is atomic.
package store

import (
	"fmt"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/units"
)

// IsFavorite reports whether the user has favorited the workout.
func (s *Store) IsFavorite(userID, workoutID string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM favorites WHERE user_id = ? AND workout_id = ?",
		userID, workoutID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("is favorite: %w", err)
	}
	return count > 0, nil
}

// AddFavorite marks a workout as favorited. Returns false when the
// favorite already existed; re-adding is not an error.
func (s *Store) AddFavorite(userID, workoutID string) (bool, error) {
	f := models.NewFavorite(userID, workoutID)
	result, err := s.db.Exec(`
		INSERT OR IGNORE INTO favorites (id, user_id, workout_id, created_at)
		VALUES (?, ?, ?, ?)`,
		f.ID, f.UserID, f.WorkoutID, units.FormatTime(f.CreatedAt),
	)
	if err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return affected > 0, nil
}

// RemoveFavorite unmarks a workout. Returns whether a row was removed.
func (s *Store) RemoveFavorite(userID, workoutID string) (bool, error) {
	result, err := s.db.Exec(
		"DELETE FROM favorites WHERE user_id = ? AND workout_id = ?",
		userID, workoutID,
	)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	return affected > 0, nil
}

// ToggleFavorite flips the favorite state inside one transaction and
// returns the resulting state: true when the workout is now favorited.
func (s *Store) ToggleFavorite(userID, workoutID string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.Exec(
		"DELETE FROM favorites WHERE user_id = ? AND workout_id = ?",
		userID, workoutID,
	)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}

	if affected > 0 {
		// Was favorited; the delete unfavorited it.
		if err := tx.Commit(); err != nil {
			return false, fmt.Errorf("toggle favorite: %w", err)
		}
		return false, nil
	}

	f := models.NewFavorite(userID, workoutID)
	_, err = tx.Exec(`
		INSERT INTO favorites (id, user_id, workout_id, created_at)
		VALUES (?, ?, ?, ?)`,
		f.ID, f.UserID, f.WorkoutID, units.FormatTime(f.CreatedAt),
	)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	return true, nil
}

// Favorites returns the user's favorited workouts, most recently
// favorited first.
func (s *Store) Favorites(userID string) ([]*models.Workout, error) {
	rows, err := s.db.Query(`
		SELECT w.id, w.name, w.muscle_group_id, w.is_custom, w.created_by, w.created_at
		FROM favorites f
		JOIN workouts w ON w.id = f.workout_id
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("favorites: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// FavoriteIDs returns the set of workout ids the user has favorited, for
// O(1) membership checks while rendering a list.
func (s *Store) FavoriteIDs(userID string) (map[string]bool, error) {
	rows, err := s.db.Query(
		"SELECT workout_id FROM favorites WHERE user_id = ?", userID,
	)
	if err != nil {
		return nil, fmt.Errorf("favorite ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite id: %w", err)
		}
		ids[id] = true
	}
	return ids, rows.Err()
}
