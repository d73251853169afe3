// ABOUTME: Workout (exercise definition) and MuscleGroup models.
// ABOUTME: A Workout is a named exercise like "Bench Press", not a session.
package models

import (
	"time"

	"github.com/harperreed/lift/internal/units"
)

// MuscleGroup is a fixed reference category used to organize workouts.
// Rows are created once by the seed loader and never mutated.
type MuscleGroup struct {
	ID           string
	Name         string
	DisplayOrder int
}

// Workout is an exercise definition. Built-ins are seeded with CreatedBy
// nil; custom ones carry IsCustom and the creating user's id.
type Workout struct {
	ID            string
	Name          string
	MuscleGroupID string
	IsCustom      bool
	CreatedBy     *string
	CreatedAt     time.Time
}

// NewWorkout creates a built-in workout definition.
func NewWorkout(name, muscleGroupID string) *Workout {
	return &Workout{
		ID:            units.NewID(),
		Name:          name,
		MuscleGroupID: muscleGroupID,
		CreatedAt:     units.Now(),
	}
}

// NewCustomWorkout creates a user-defined workout attributed to userID.
func NewCustomWorkout(name, muscleGroupID, userID string) *Workout {
	w := NewWorkout(name, muscleGroupID)
	w.IsCustom = true
	w.CreatedBy = &userID
	return w
}
