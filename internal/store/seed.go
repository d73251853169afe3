// ABOUTME: Idempotent seed loader for reference data.
// ABOUTME: Populates the 7 muscle groups and the built-in exercise catalog.
package store

import (
	"fmt"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/units"
)

// Muscle group ids are stable and pre-assigned; workout rows reference
// them, and the mobile clients hard-code them for tab ordering.
const (
	GroupChest     = "mg-chest"
	GroupBack      = "mg-back"
	GroupLegs      = "mg-legs"
	GroupShoulders = "mg-shoulders"
	GroupBiceps    = "mg-biceps"
	GroupTriceps   = "mg-triceps"
	GroupCore      = "mg-core"
)

var muscleGroupSeeds = []models.MuscleGroup{
	{ID: GroupChest, Name: "Chest", DisplayOrder: 1},
	{ID: GroupBack, Name: "Back", DisplayOrder: 2},
	{ID: GroupLegs, Name: "Legs", DisplayOrder: 3},
	{ID: GroupShoulders, Name: "Shoulders", DisplayOrder: 4},
	{ID: GroupBiceps, Name: "Biceps", DisplayOrder: 5},
	{ID: GroupTriceps, Name: "Triceps", DisplayOrder: 6},
	{ID: GroupCore, Name: "Core", DisplayOrder: 7},
}

// builtinCatalog maps muscle group id to its built-in exercise names.
var builtinCatalog = map[string][]string{
	GroupChest: {
		"Bench Press",
		"Incline Bench Press",
		"Decline Bench Press",
		"Dumbbell Bench Press",
		"Incline Dumbbell Press",
		"Dumbbell Fly",
		"Cable Crossover",
		"Chest Dip",
		"Push-Up",
	},
	GroupBack: {
		"Deadlift",
		"Pull-Up",
		"Chin-Up",
		"Lat Pulldown",
		"Barbell Row",
		"Dumbbell Row",
		"Seated Cable Row",
		"T-Bar Row",
		"Back Extension",
	},
	GroupLegs: {
		"Squat",
		"Front Squat",
		"Leg Press",
		"Lunge",
		"Bulgarian Split Squat",
		"Romanian Deadlift",
		"Leg Extension",
		"Leg Curl",
		"Calf Raise",
		"Hip Thrust",
	},
	GroupShoulders: {
		"Overhead Press",
		"Dumbbell Shoulder Press",
		"Arnold Press",
		"Lateral Raise",
		"Front Raise",
		"Rear Delt Fly",
		"Upright Row",
		"Face Pull",
	},
	GroupBiceps: {
		"Barbell Curl",
		"Dumbbell Curl",
		"Hammer Curl",
		"Preacher Curl",
		"Incline Curl",
		"Cable Curl",
		"Concentration Curl",
	},
	GroupTriceps: {
		"Close-Grip Bench Press",
		"Triceps Pushdown",
		"Skull Crusher",
		"Overhead Triceps Extension",
		"Triceps Dip",
		"Cable Kickback",
		"Diamond Push-Up",
	},
	GroupCore: {
		"Plank",
		"Crunch",
		"Sit-Up",
		"Russian Twist",
		"Hanging Leg Raise",
		"Ab Wheel Rollout",
		"Cable Crunch",
		"Side Plank",
	},
}

// Seed populates reference data exactly once. Safe to call on every
// startup: a non-empty table skips its seed step entirely. There is no
// upsert-by-name logic, so a crash mid-insert leaves a partial catalog
// that only a reset clears.
func (s *Store) Seed() error {
	if err := s.seedMuscleGroups(); err != nil {
		return fmt.Errorf("seed muscle groups: %w", err)
	}
	if err := s.seedWorkouts(); err != nil {
		return fmt.Errorf("seed workouts: %w", err)
	}
	return nil
}

func (s *Store) seedMuscleGroups() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM muscle_groups").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, g := range muscleGroupSeeds {
		_, err := s.db.Exec(
			"INSERT INTO muscle_groups (id, name, display_order) VALUES (?, ?, ?)",
			g.ID, g.Name, g.DisplayOrder,
		)
		if err != nil {
			return fmt.Errorf("insert %s: %w", g.Name, err)
		}
	}
	return nil
}

func (s *Store) seedWorkouts() error {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM workouts WHERE is_custom = 0").Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Insert in display order so generated timestamps follow the catalog.
	for _, g := range muscleGroupSeeds {
		for _, name := range builtinCatalog[g.ID] {
			w := models.NewWorkout(name, g.ID)
			if err := s.insertWorkout(w); err != nil {
				return fmt.Errorf("insert %s: %w", name, err)
			}
		}
	}
	return nil
}

func (s *Store) insertWorkout(w *models.Workout) error {
	_, err := s.db.Exec(`
		INSERT INTO workouts (id, name, muscle_group_id, is_custom, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.MuscleGroupID, w.IsCustom, w.CreatedBy,
		units.FormatTime(w.CreatedAt),
	)
	return err
}
