// ABOUTME: Lift configuration management.
// ABOUTME: Handles data directory override and guest display name.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/lift/internal/store"
)

// Config stores lift tool configuration.
type Config struct {
	// DataDir is the directory holding lift.db.
	// Supports ~ expansion. Defaults to ~/.local/share/lift.
	DataDir string `json:"data_dir,omitempty"`

	// DisplayName is the name used when bootstrapping the guest user.
	DisplayName string `json:"display_name,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return store.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDisplayName returns the guest display name, defaulting to "Guest".
func (c *Config) GetDisplayName() string {
	if c.DisplayName == "" {
		return "Guest"
	}
	return c.DisplayName
}

// OpenStore opens the SQLite store in the configured data directory.
func (c *Config) OpenStore() (*store.Store, error) {
	return store.Open(filepath.Join(c.GetDataDir(), "lift.db"))
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lift", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
