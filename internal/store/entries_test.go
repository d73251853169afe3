// ABOUTME: Tests for weight entry logging, history, PR, and recent queries.
// ABOUTME: Covers ownership isolation and the end-to-end logging scenario.
package store

import (
	"testing"
	"time"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/units"
)

func TestLogEntryDefaults(t *testing.T) {
	s := setupSeededStore(t)
	u := createTestUser(t, s, "Alice")
	w := findWorkout(t, s, "Bench Press")

	e := models.NewWeightEntry(u.ID, w.ID, 135)
	if err := s.LogEntry(e); err != nil {
		t.Fatalf("LogEntry failed: %v", err)
	}

	got, err := s.LastEntry(u.ID, w.ID)
	if err != nil {
		t.Fatalf("LastEntry failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected an entry")
	}
	if got.Reps != models.DefaultReps {
		t.Errorf("Expected default reps %d, got %d", models.DefaultReps, got.Reps)
	}
	if got.Weight != 135 {
		t.Errorf("Expected weight 135, got %v", got.Weight)
	}
	if !got.RecordedAt.Equal(got.CreatedAt) {
		t.Errorf("Expected recorded_at to default to created_at, got %v vs %v",
			got.RecordedAt, got.CreatedAt)
	}
	if got.Notes != nil {
		t.Errorf("Expected nil notes, got %v", *got.Notes)
	}
}

func TestLogEntryBackdated(t *testing.T) {
	s := setupSeededStore(t)
	u := createTestUser(t, s, "Alice")
	w := findWorkout(t, s, "Squat")

	past := units.Now().Add(-48 * time.Hour)
	e := models.NewWeightEntry(u.ID, w.ID, 225).WithReps(3).WithNotes("heavy triple").WithRecordedAt(past)
	if err := s.LogEntry(e); err != nil {
		t.Fatalf("LogEntry failed: %v", err)
	}

	got, err := s.LastEntry(u.ID, w.ID)
	if err != nil {
		t.Fatalf("LastEntry failed: %v", err)
	}
	if !got.RecordedAt.Equal(past) {
		t.Errorf("Expected recorded_at %v, got %v", past, got.RecordedAt)
	}
	if got.RecordedAt.Equal(got.CreatedAt) {
		t.Error("Expected created_at to stay at insertion time for back-dated entry")
	}
	if got.Notes == nil || *got.Notes != "heavy triple" {
		t.Errorf("Notes mismatch: got %v", got.Notes)
	}
}

func TestWorkoutHistoryNewestFirst(t *testing.T) {
	s := setupSeededStore(t)
	u := createTestUser(t, s, "Alice")
	w := findWorkout(t, s, "Deadlift")

	base := units.Now().Add(-72 * time.Hour)
	for i, weight := range []float64{275, 295, 315} {
		e := models.NewWeightEntry(u.ID, w.ID, weight).
			WithRecordedAt(base.Add(time.Duration(i) * 24 * time.Hour))
		if err := s.LogEntry(e); err != nil {
			t.Fatalf("LogEntry failed: %v", err)
		}
	}

	history, err := s.WorkoutHistory(w.ID, u.ID, 0)
	if err != nil {
		t.Fatalf("WorkoutHistory failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(history))
	}
	if history[0].Weight != 315 || history[2].Weight != 275 {
		t.Errorf("Expected newest first: got %v, %v, %v",
			history[0].Weight, history[1].Weight, history[2].Weight)
	}

	limited, err := s.WorkoutHistory(w.ID, u.ID, 2)
	if err != nil {
		t.Fatalf("WorkoutHistory with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 entries with limit, got %d", len(limited))
	}
}

func TestLastEntryEmpty(t *testing.T) {
	s := setupSeededStore(t)
	u := createTestUser(t, s, "Alice")
	w := findWorkout(t, s, "Bench Press")

	got, err := s.LastEntry(u.ID, w.ID)
	if err != nil {
		t.Fatalf("LastEntry failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for empty history, got %+v", got)
	}
}

func TestPersonalRecord(t *testing.T) {
	s := setupSeededStore(t)
	u := createTestUser(t, s, "Alice")
	w := findWorkout(t, s, "Overhead Press")

	base := units.Now().Add(-72 * time.Hour)
	weights := []float64{95, 115, 105}
	for i, weight := range weights {
		e := models.NewWeightEntry(u.ID, w.ID, weight).
			WithRecordedAt(base.Add(time.Duration(i) * 24 * time.Hour))
		if err := s.LogEntry(e); err != nil {
			t.Fatalf("LogEntry failed: %v", err)
		}
	}

	pr, err := s.PersonalRecord(u.ID, w.ID)
	if err != nil {
		t.Fatalf("PersonalRecord failed: %v", err)
	}
	if pr == nil {
		t.Fatal("Expected a personal record")
	}
	if pr.Weight != 115 {
		t.Errorf("Expected PR weight 115, got %v", pr.Weight)
	}
}

func TestPersonalRecordTieBreak(t *testing.T) {
	// Two entries at the max weight: the earliest recorded one wins.
	s := setupSeededStore(t)
	u := createTestUser(t, s, "Alice")
	w := findWorkout(t, s, "Barbell Row")

	earlier := units.Now().Add(-48 * time.Hour)
	later := units.Now().Add(-24 * time.Hour)

	first := models.NewWeightEntry(u.ID, w.ID, 185).WithRecordedAt(earlier)
	second := models.NewWeightEntry(u.ID, w.ID, 185).WithRecordedAt(later)
	for _, e := range []*models.WeightEntry{first, second} {
		if err := s.LogEntry(e); err != nil {
			t.Fatalf("LogEntry failed: %v", err)
		}
	}

	pr, err := s.PersonalRecord(u.ID, w.ID)
	if err != nil {
		t.Fatalf("PersonalRecord failed: %v", err)
	}
	if pr.ID != first.ID {
		t.Errorf("Expected earliest max-weight entry %s, got %s", first.ID, pr.ID)
	}
}

func TestPersonalRecordEmpty(t *testing.T) {
	s := setupSeededStore(t)
	u := createTestUser(t, s, "Alice")
	w := findWorkout(t, s, "Bench Press")

	pr, err := s.PersonalRecord(u.ID, w.ID)
	if err != nil {
		t.Fatalf("PersonalRecord failed: %v", err)
	}
	if pr != nil {
		t.Errorf("Expected nil PR for empty history, got %+v", pr)
	}
}

func TestRecentWorkoutsOnePerWorkout(t *testing.T) {
	s := setupSeededStore(t)
	u := createTestUser(t, s, "Alice")
	bench := findWorkout(t, s, "Bench Press")
	squat := findWorkout(t, s, "Squat")
	dead := findWorkout(t, s, "Deadlift")

	base := units.Now().Add(-10 * 24 * time.Hour)
	// Six entries across three workouts; each workout's latest must be
	// the one row returned for it.
	logAt := func(w *models.Workout, weight float64, day int) {
		e := models.NewWeightEntry(u.ID, w.ID, weight).
			WithRecordedAt(base.Add(time.Duration(day) * 24 * time.Hour))
		if err := s.LogEntry(e); err != nil {
			t.Fatalf("LogEntry failed: %v", err)
		}
	}
	logAt(bench, 135, 0)
	logAt(squat, 185, 1)
	logAt(bench, 140, 2)
	logAt(dead, 275, 3)
	logAt(squat, 195, 4)
	logAt(bench, 145, 5)

	recents, err := s.RecentWorkouts(u.ID, 0)
	if err != nil {
		t.Fatalf("RecentWorkouts failed: %v", err)
	}
	if len(recents) != 3 {
		t.Fatalf("Expected 3 rows (one per workout), got %d", len(recents))
	}

	// Ordered by latest entry: bench (day 5), squat (day 4), dead (day 3)
	if recents[0].Workout.ID != bench.ID || recents[0].Entry.Weight != 145 {
		t.Errorf("Expected bench@145 first, got %s@%v",
			recents[0].Workout.Name, recents[0].Entry.Weight)
	}
	if recents[1].Workout.ID != squat.ID || recents[1].Entry.Weight != 195 {
		t.Errorf("Expected squat@195 second, got %s@%v",
			recents[1].Workout.Name, recents[1].Entry.Weight)
	}
	if recents[2].Workout.ID != dead.ID {
		t.Errorf("Expected deadlift third, got %s", recents[2].Workout.Name)
	}

	limited, err := s.RecentWorkouts(u.ID, 2)
	if err != nil {
		t.Fatalf("RecentWorkouts with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 rows with limit, got %d", len(limited))
	}
}

func TestEntriesInDateRange(t *testing.T) {
	s := setupSeededStore(t)
	u := createTestUser(t, s, "Alice")
	w := findWorkout(t, s, "Lunge")

	base := units.Now().Add(-10 * 24 * time.Hour)
	for day := 0; day < 5; day++ {
		e := models.NewWeightEntry(u.ID, w.ID, 95).
			WithRecordedAt(base.Add(time.Duration(day) * 24 * time.Hour))
		if err := s.LogEntry(e); err != nil {
			t.Fatalf("LogEntry failed: %v", err)
		}
	}

	from := base.Add(24 * time.Hour)
	to := base.Add(3 * 24 * time.Hour)
	entries, err := s.EntriesInDateRange(u.ID, from, to)
	if err != nil {
		t.Fatalf("EntriesInDateRange failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries in range, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].RecordedAt.Before(entries[i].RecordedAt) {
			t.Error("Expected newest first ordering")
		}
	}
}

func TestDeleteEntryOwnership(t *testing.T) {
	s := setupSeededStore(t)
	alice := createTestUser(t, s, "Alice")
	bob := createTestUser(t, s, "Bob")
	w := findWorkout(t, s, "Bench Press")

	e := models.NewWeightEntry(alice.ID, w.ID, 135)
	if err := s.LogEntry(e); err != nil {
		t.Fatalf("LogEntry failed: %v", err)
	}

	// Bob cannot see or delete Alice's entry
	bobHistory, err := s.WorkoutHistory(w.ID, bob.ID, 0)
	if err != nil {
		t.Fatalf("WorkoutHistory failed: %v", err)
	}
	if len(bobHistory) != 0 {
		t.Errorf("Expected Bob to see no entries, got %d", len(bobHistory))
	}

	deleted, err := s.DeleteEntry(e.ID, bob.ID)
	if err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if deleted {
		t.Error("Expected foreign delete to report false")
	}

	// Row intact, owner can delete
	still, err := s.LastEntry(alice.ID, w.ID)
	if err != nil {
		t.Fatalf("LastEntry failed: %v", err)
	}
	if still == nil {
		t.Fatal("Expected entry to survive foreign delete attempt")
	}

	deleted, err = s.DeleteEntry(e.ID, alice.ID)
	if err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if !deleted {
		t.Error("Expected owner delete to report true")
	}

	deleted, err = s.DeleteEntry(e.ID, alice.ID)
	if err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if deleted {
		t.Error("Expected second delete to report false")
	}
}

func TestUpdateEntry(t *testing.T) {
	s := setupSeededStore(t)
	u := createTestUser(t, s, "Alice")
	w := findWorkout(t, s, "Bench Press")

	e := models.NewWeightEntry(u.ID, w.ID, 135)
	if err := s.LogEntry(e); err != nil {
		t.Fatalf("LogEntry failed: %v", err)
	}

	// No fields: no-op
	changed, err := s.UpdateEntry(e.ID, u.ID, EntryUpdate{})
	if err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}
	if changed {
		t.Error("Expected empty update to report false")
	}

	weight := 140.0
	reps := 5
	changed, err = s.UpdateEntry(e.ID, u.ID, EntryUpdate{Weight: &weight, Reps: &reps})
	if err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}
	if !changed {
		t.Error("Expected update to report true")
	}

	got, err := s.LastEntry(u.ID, w.ID)
	if err != nil {
		t.Fatalf("LastEntry failed: %v", err)
	}
	if got.Weight != 140 || got.Reps != 5 {
		t.Errorf("Expected 140x5, got %vx%d", got.Weight, got.Reps)
	}

	// Foreign user: no-op
	other := createTestUser(t, s, "Bob")
	changed, err = s.UpdateEntry(e.ID, other.ID, EntryUpdate{Weight: &weight})
	if err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}
	if changed {
		t.Error("Expected foreign update to report false")
	}
}

func TestLoggingScenario(t *testing.T) {
	// Full scenario: two sessions a day apart; PR and last entry agree on
	// the heavier, newer set; history is newest first.
	s := setupSeededStore(t)
	u := createTestUser(t, s, "Alice")
	w := findWorkout(t, s, "Bench Press")

	dayOne := units.Now().Add(-24 * time.Hour)
	first := models.NewWeightEntry(u.ID, w.ID, 135).WithRecordedAt(dayOne)
	if err := s.LogEntry(first); err != nil {
		t.Fatalf("LogEntry failed: %v", err)
	}
	second := models.NewWeightEntry(u.ID, w.ID, 145).WithReps(5)
	if err := s.LogEntry(second); err != nil {
		t.Fatalf("LogEntry failed: %v", err)
	}

	pr, err := s.PersonalRecord(u.ID, w.ID)
	if err != nil {
		t.Fatalf("PersonalRecord failed: %v", err)
	}
	if pr == nil || pr.Weight != 145 {
		t.Errorf("Expected PR at 145, got %+v", pr)
	}

	last, err := s.LastEntry(u.ID, w.ID)
	if err != nil {
		t.Fatalf("LastEntry failed: %v", err)
	}
	if last == nil || last.ID != second.ID {
		t.Errorf("Expected last entry to be the 145 set")
	}

	history, err := s.WorkoutHistory(w.ID, u.ID, 0)
	if err != nil {
		t.Fatalf("WorkoutHistory failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(history))
	}
	if history[0].ID != second.ID || history[1].ID != first.ID {
		t.Error("Expected newest-first ordering")
	}
}
