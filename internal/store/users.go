// ABOUTME: User rows, per-user preferences, and auth-provider linking.
// ABOUTME: Includes the local guest bootstrap and cascading account delete.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/units"
)

const userColumns = "id, display_name, auth_provider, auth_id, weight_unit, theme, created_at"

// CreateUser persists a user row. Defaults (lbs, dark) come from the
// models.NewUser constructor.
func (s *Store) CreateUser(u *models.User) error {
	var provider, authID interface{}
	if u.AuthProvider != nil {
		provider = string(*u.AuthProvider)
	}
	if u.AuthID != nil {
		authID = *u.AuthID
	}

	_, err := s.db.Exec(`
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.DisplayName, provider, authID,
		string(u.WeightUnit), string(u.Theme), units.FormatTime(u.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// UserByID returns a user, or nil when unknown.
func (s *Store) UserByID(id string) (*models.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanUser(row)
}

// UserByAuthID returns the user linked to an external identity, or nil.
func (s *Store) UserByAuthID(provider models.AuthProvider, authID string) (*models.User, error) {
	row := s.db.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE auth_provider = ? AND auth_id = ?",
		string(provider), authID,
	)
	return scanUser(row)
}

// UserUpdate carries the fields UpdateUserPreferences may change.
type UserUpdate struct {
	DisplayName *string
	WeightUnit  *units.WeightUnit
	Theme       *models.Theme
}

// UpdateUserPreferences applies a partial preferences update. Returns
// false when no fields were supplied or the user is unknown.
func (s *Store) UpdateUserPreferences(userID string, upd UserUpdate) (bool, error) {
	var sets []string
	var args []interface{}

	if upd.DisplayName != nil {
		sets = append(sets, "display_name = ?")
		args = append(args, *upd.DisplayName)
	}
	if upd.WeightUnit != nil {
		sets = append(sets, "weight_unit = ?")
		args = append(args, string(*upd.WeightUnit))
	}
	if upd.Theme != nil {
		sets = append(sets, "theme = ?")
		args = append(args, string(*upd.Theme))
	}
	if len(sets) == 0 {
		return false, nil
	}

	args = append(args, userID)
	result, err := s.db.Exec(
		"UPDATE users SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...,
	)
	if err != nil {
		return false, fmt.Errorf("update user preferences: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update user preferences: %w", err)
	}
	return affected > 0, nil
}

// UpdateWeightUnit sets only the preferred display unit.
func (s *Store) UpdateWeightUnit(userID string, unit units.WeightUnit) (bool, error) {
	return s.UpdateUserPreferences(userID, UserUpdate{WeightUnit: &unit})
}

// UpdateTheme sets only the theme.
func (s *Store) UpdateTheme(userID string, theme models.Theme) (bool, error) {
	return s.UpdateUserPreferences(userID, UserUpdate{Theme: &theme})
}

// LinkAuthProvider attaches an external identity to an existing user — the
// guest-to-account upgrade path. Returns false when the user is unknown.
func (s *Store) LinkAuthProvider(userID string, provider models.AuthProvider, authID string) (bool, error) {
	result, err := s.db.Exec(
		"UPDATE users SET auth_provider = ?, auth_id = ? WHERE id = ?",
		string(provider), authID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("link auth provider: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("link auth provider: %w", err)
	}
	return affected > 0, nil
}

// GetOrCreateLocalUser returns the guest user, creating it on first call.
// A partial unique index keeps the guest row singular; the created_at
// ordering keeps lookups deterministic on databases predating that index.
func (s *Store) GetOrCreateLocalUser(displayName string) (*models.User, error) {
	row := s.db.QueryRow(`
		SELECT ` + userColumns + `
		FROM users
		WHERE auth_provider = 'local'
		ORDER BY created_at ASC, id ASC
		LIMIT 1`,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u = models.NewUser(displayName).WithLocalAuth()
	if err := s.CreateUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes the user's entries, favorites, custom workouts, and
// finally the user row. Irreversible; no soft delete.
func (s *Store) DeleteUser(userID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	steps := []struct {
		desc  string
		query string
	}{
		{"delete entries", "DELETE FROM weight_entries WHERE user_id = ?"},
		{"delete favorites", "DELETE FROM favorites WHERE user_id = ?"},
		{"delete custom workouts", "DELETE FROM workouts WHERE created_by = ?"},
		{"delete user row", "DELETE FROM users WHERE id = ?"},
	}
	for _, step := range steps {
		if _, err := tx.Exec(step.query, userID); err != nil {
			return fmt.Errorf("delete user: %s: %w", step.desc, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// scanUser scans a single row into a User. Absence is nil.
func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var provider, authID sql.NullString
	var unit, theme, createdAt string

	err := row.Scan(&u.ID, &u.DisplayName, &provider, &authID, &unit, &theme, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}

	if provider.Valid {
		p := models.AuthProvider(provider.String)
		u.AuthProvider = &p
	}
	if authID.Valid {
		u.AuthID = &authID.String
	}
	u.WeightUnit = units.WeightUnit(unit)
	u.Theme = models.Theme(theme)
	u.CreatedAt, _ = units.ParseTime(createdAt)

	return &u, nil
}
