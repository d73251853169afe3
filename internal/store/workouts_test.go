// ABOUTME: Tests for catalog reads: search ranking, group listing, customs.
// ABOUTME: Verifies prefix-before-substring ordering and LIKE escaping.
package store

import (
	"sort"
	"strings"
	"testing"
)

func TestSearchPrefixBeforeSubstring(t *testing.T) {
	s := setupSeededStore(t)

	results, err := s.SearchWorkouts("Bench", 0)
	if err != nil {
		t.Fatalf("SearchWorkouts failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("Expected matches for 'Bench'")
	}

	if results[0].Name != "Bench Press" {
		t.Errorf("Expected 'Bench Press' first, got %q", results[0].Name)
	}

	var sawIncline, sawCrossover bool
	prefixDone := false
	for _, w := range results {
		hasPrefix := strings.HasPrefix(strings.ToLower(w.Name), "bench")
		if !hasPrefix {
			prefixDone = true
		} else if prefixDone {
			t.Errorf("Prefix match %q sorted after a substring match", w.Name)
		}
		if w.Name == "Incline Bench Press" {
			sawIncline = true
		}
		if w.Name == "Cable Crossover" {
			sawCrossover = true
		}
	}
	if !sawIncline {
		t.Error("Expected 'Incline Bench Press' in substring bucket")
	}
	if sawCrossover {
		t.Error("'Cable Crossover' should not match 'Bench'")
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	s := setupSeededStore(t)

	lower, err := s.SearchWorkouts("bench", 0)
	if err != nil {
		t.Fatalf("SearchWorkouts failed: %v", err)
	}
	upper, err := s.SearchWorkouts("BENCH", 0)
	if err != nil {
		t.Fatalf("SearchWorkouts failed: %v", err)
	}
	if len(lower) == 0 || len(lower) != len(upper) {
		t.Errorf("Expected case-insensitive match parity, got %d vs %d", len(lower), len(upper))
	}
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	s := setupSeededStore(t)

	all, err := s.SearchWorkouts("", 0)
	if err != nil {
		t.Fatalf("SearchWorkouts failed: %v", err)
	}
	if len(all) != 58 {
		t.Errorf("Expected all 58 workouts for empty query, got %d", len(all))
	}

	limited, err := s.SearchWorkouts("", 10)
	if err != nil {
		t.Fatalf("SearchWorkouts failed: %v", err)
	}
	if len(limited) != 10 {
		t.Errorf("Expected 10 workouts with limit, got %d", len(limited))
	}
}

func TestSearchEscapesWildcards(t *testing.T) {
	// A literal % in the query must not act as a match-everything wildcard.
	s := setupSeededStore(t)

	results, err := s.SearchWorkouts("100%", 0)
	if err != nil {
		t.Fatalf("SearchWorkouts failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no matches for '100%%', got %d", len(results))
	}

	underscore, err := s.SearchWorkouts("_____", 0)
	if err != nil {
		t.Fatalf("SearchWorkouts failed: %v", err)
	}
	if len(underscore) != 0 {
		t.Errorf("Expected no matches for underscores, got %d", len(underscore))
	}
}

func TestWorkoutsByMuscleGroupAlphabetical(t *testing.T) {
	s := setupSeededStore(t)

	workouts, err := s.WorkoutsByMuscleGroup(GroupChest)
	if err != nil {
		t.Fatalf("WorkoutsByMuscleGroup failed: %v", err)
	}
	if len(workouts) != 9 {
		t.Fatalf("Expected 9 chest workouts, got %d", len(workouts))
	}

	names := make([]string, len(workouts))
	for i, w := range workouts {
		names[i] = w.Name
	}
	if !sort.SliceIsSorted(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	}) {
		t.Errorf("Expected alphabetical order, got %v", names)
	}
}

func TestWorkoutByID(t *testing.T) {
	s := setupSeededStore(t)
	bench := findWorkout(t, s, "Bench Press")

	got, err := s.WorkoutByID(bench.ID)
	if err != nil {
		t.Fatalf("WorkoutByID failed: %v", err)
	}
	if got == nil || got.Name != "Bench Press" {
		t.Errorf("Expected Bench Press, got %+v", got)
	}

	missing, err := s.WorkoutByID("no-such-id")
	if err != nil {
		t.Fatalf("WorkoutByID failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown id, got %+v", missing)
	}
}

func TestCreateCustomWorkout(t *testing.T) {
	s := setupSeededStore(t)
	u := createTestUser(t, s, "Alice")

	w, err := s.CreateCustomWorkout("Zercher Squat", GroupLegs, u.ID)
	if err != nil {
		t.Fatalf("CreateCustomWorkout failed: %v", err)
	}
	if !w.IsCustom {
		t.Error("Expected custom flag")
	}
	if w.CreatedBy == nil || *w.CreatedBy != u.ID {
		t.Error("Expected creator attribution")
	}

	got, err := s.WorkoutByID(w.ID)
	if err != nil {
		t.Fatalf("WorkoutByID failed: %v", err)
	}
	if got == nil || !got.IsCustom || got.CreatedBy == nil || *got.CreatedBy != u.ID {
		t.Errorf("Persisted custom workout mismatch: %+v", got)
	}

	// Duplicate names are allowed by design
	if _, err := s.CreateCustomWorkout("Zercher Squat", GroupLegs, u.ID); err != nil {
		t.Errorf("Expected duplicate name to be permitted: %v", err)
	}
	count, err := s.WorkoutCountByMuscleGroup(GroupLegs)
	if err != nil {
		t.Fatalf("WorkoutCountByMuscleGroup failed: %v", err)
	}
	if count != 12 {
		t.Errorf("Expected 10 built-ins plus 2 customs, got %d", count)
	}
}

func TestMuscleGroupByID(t *testing.T) {
	s := setupSeededStore(t)

	g, err := s.MuscleGroupByID(GroupCore)
	if err != nil {
		t.Fatalf("MuscleGroupByID failed: %v", err)
	}
	if g == nil || g.Name != "Core" || g.DisplayOrder != 7 {
		t.Errorf("Expected Core at order 7, got %+v", g)
	}

	missing, err := s.MuscleGroupByID("mg-forearms")
	if err != nil {
		t.Fatalf("MuscleGroupByID failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown group, got %+v", missing)
	}
}
