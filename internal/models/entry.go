// ABOUTME: WeightEntry model for a single logged set.
// ABOUTME: Weight is always stored in pounds; reps default to 7.
package models

import (
	"time"

	"github.com/harperreed/lift/internal/units"
)

// DefaultReps is the rep count used when the caller supplies none.
// The UI's rep-pill pre-selection depends on this value.
const DefaultReps = 7

// WeightEntry is one logged set (weight x reps) against a workout.
// Weight is in pounds regardless of the user's display unit; converting
// kilogram input before logging is the caller's job.
type WeightEntry struct {
	ID         string
	UserID     string
	WorkoutID  string
	Weight     float64
	Reps       int
	Notes      *string
	RecordedAt time.Time
	CreatedAt  time.Time
}

// NewWeightEntry creates an entry with generated id, default reps, and
// RecordedAt equal to CreatedAt (now).
func NewWeightEntry(userID, workoutID string, weight float64) *WeightEntry {
	now := units.Now()
	return &WeightEntry{
		ID:         units.NewID(),
		UserID:     userID,
		WorkoutID:  workoutID,
		Weight:     weight,
		Reps:       DefaultReps,
		RecordedAt: now,
		CreatedAt:  now,
	}
}

// WithReps sets the rep count.
func (e *WeightEntry) WithReps(reps int) *WeightEntry {
	e.Reps = reps
	return e
}

// WithNotes sets notes on the entry.
func (e *WeightEntry) WithNotes(notes string) *WeightEntry {
	e.Notes = &notes
	return e
}

// WithRecordedAt back-dates the entry. CreatedAt stays at insertion time.
func (e *WeightEntry) WithRecordedAt(t time.Time) *WeightEntry {
	e.RecordedAt = t.UTC().Truncate(time.Second)
	return e
}
