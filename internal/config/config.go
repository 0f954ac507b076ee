// Package config manages the user-level configuration file.
//
// Settings live in ~/.pointage/config.toml and are created with defaults
// on first load. The database path lives alongside it so the whole state
// of the tool can be wiped by removing a single directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the user-tunable settings.
type Config struct {
	DateFormat   string `toml:"date_format"`   // "FR", "US" or "ISO"
	CSVSeparator string `toml:"csv_separator"` // single character, ";" by default
	Currency     string `toml:"currency"`      // display currency code
	Storage      string `toml:"storage"`       // "sqlite" or "memory"
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		DateFormat:   "FR",
		CSVSeparator: ";",
		Currency:     "EUR",
		Storage:      "sqlite",
	}
}

// PointageDir returns the per-user state directory.
func PointageDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pointage"), nil
}

// ConfigPath returns the location of the TOML config file.
func ConfigPath() (string, error) {
	dir, err := PointageDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureDirectories creates the state directory if missing.
func EnsureDirectories() error {
	dir, err := PointageDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}

// Load reads the config file, creating it with defaults on first use.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := EnsureDirectories(); err != nil {
			return nil, err
		}
		if err := Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the config file.
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
