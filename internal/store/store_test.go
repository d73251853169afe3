// ABOUTME: Shared test helpers for the store package.
// ABOUTME: Opens isolated temp databases and creates fixture rows.
package store

import (
	"path/filepath"
	"testing"

	"github.com/harperreed/lift/internal/models"
)

// setupTestStore opens a fresh store in a temp directory. Seeding is left
// to the test so empty-catalog behavior stays testable.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "lift.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// setupSeededStore opens a store with the built-in catalog loaded.
func setupSeededStore(t *testing.T) *Store {
	t.Helper()

	s := setupTestStore(t)
	if err := s.Seed(); err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}
	return s
}

// createTestUser persists and returns a plain user.
func createTestUser(t *testing.T, s *Store, name string) *models.User {
	t.Helper()

	u := models.NewUser(name)
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("Failed to create user %s: %v", name, err)
	}
	return u
}

// findWorkout resolves a seeded workout by exact name.
func findWorkout(t *testing.T, s *Store, name string) *models.Workout {
	t.Helper()

	matches, err := s.SearchWorkouts(name, 1)
	if err != nil {
		t.Fatalf("Failed to search for %s: %v", name, err)
	}
	if len(matches) == 0 || matches[0].Name != name {
		t.Fatalf("Workout %q not found in catalog", name)
	}
	return matches[0]
}
