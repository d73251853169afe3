// ABOUTME: Favorite marker joining a user to a workout.
// ABOUTME: Unique per (user, workout); created and destroyed, never updated.
package models

import (
	"time"

	"github.com/harperreed/lift/internal/units"
)

// Favorite marks a workout as favorited by a user.
type Favorite struct {
	ID        string
	UserID    string
	WorkoutID string
	CreatedAt time.Time
}

// NewFavorite creates a favorite marker.
func NewFavorite(userID, workoutID string) *Favorite {
	return &Favorite{
		ID:        units.NewID(),
		UserID:    userID,
		WorkoutID: workoutID,
		CreatedAt: units.Now(),
	}
}
