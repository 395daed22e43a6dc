// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// Environment variables that override default paths.
const (
	EnvConfigPath = "EXAMBOARD_CONFIG"
	EnvDBPath     = "EXAMBOARD_DB"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultDBPath returns the SQLite database path, honoring EXAMBOARD_DB.
func DefaultDBPath() string {
	if v := os.Getenv(EnvDBPath); v != "" {
		return v
	}
	return filepath.Join(XDGDataHome(), "examboard", "examboard.db")
}

// DefaultConfigPath returns the TOML config path, honoring EXAMBOARD_CONFIG.
func DefaultConfigPath() string {
	if v := os.Getenv(EnvConfigPath); v != "" {
		return v
	}
	return filepath.Join(XDGConfigHome(), "examboard", "config.toml")
}
