// ABOUTME: User model with auth-provider linkage and display preferences.
// ABOUTME: Defines Theme and AuthProvider enums plus the AuthUser contract.
package models

import (
	"time"

	"github.com/harperreed/lift/internal/units"
)

// Theme is the UI color theme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// IsValidTheme reports whether s is a known theme.
func IsValidTheme(s string) bool {
	return s == string(ThemeDark) || s == string(ThemeLight)
}

// AuthProvider identifies where a user's external identity came from.
type AuthProvider string

const (
	ProviderApple  AuthProvider = "apple"
	ProviderGoogle AuthProvider = "google"
	// ProviderLocal marks the guest user with no external identity.
	ProviderLocal AuthProvider = "local"
)

// User is an account row. AuthProvider and AuthID are nil for users
// created before any sign-in; at most one row exists per (provider, id)
// pair, and at most one row carries ProviderLocal.
type User struct {
	ID           string
	DisplayName  string
	AuthProvider *AuthProvider
	AuthID       *string
	WeightUnit   units.WeightUnit
	Theme        Theme
	CreatedAt    time.Time
}

// NewUser creates a User with generated ID and default preferences
// (pounds, dark theme).
func NewUser(displayName string) *User {
	return &User{
		ID:          units.NewID(),
		DisplayName: displayName,
		WeightUnit:  units.Lbs,
		Theme:       ThemeDark,
		CreatedAt:   units.Now(),
	}
}

// WithAuth links an external identity.
func (u *User) WithAuth(provider AuthProvider, authID string) *User {
	u.AuthProvider = &provider
	u.AuthID = &authID
	return u
}

// WithLocalAuth marks this user as the local guest account.
func (u *User) WithLocalAuth() *User {
	p := ProviderLocal
	u.AuthProvider = &p
	return u
}

// WithWeightUnit sets the preferred display unit.
func (u *User) WithWeightUnit(unit units.WeightUnit) *User {
	u.WeightUnit = unit
	return u
}

// WithTheme sets the preferred theme.
func (u *User) WithTheme(theme Theme) *User {
	u.Theme = theme
	return u
}

// AuthUser is what the auth layer hands over after an external sign-in.
// The core turns it into a User row; it never talks to a provider itself.
type AuthUser struct {
	Provider    AuthProvider
	AuthID      string
	Email       *string
	DisplayName *string
}
