// Package config handles loading and saving user configuration for bmi.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration for bmi.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	History HistoryConfig `yaml:"history"`
}

// DisplayConfig controls how results are rendered in the TUI.
type DisplayConfig struct {
	BigDigits bool `yaml:"big_digits"` // Render the BMI value as block art
	Legend    bool `yaml:"legend"`     // Show the category legend under the result
}

// HistoryConfig controls the calculation journal.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`  // Relative paths resolve against the config directory
	Limit   int    `yaml:"limit"` // Entries shown by default
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			BigDigits: true,
			Legend:    true,
		},
		History: HistoryConfig{
			Enabled: false,
			Path:    "history.db",
			Limit:   20,
		},
	}
}

// Validate checks the configuration for values the app cannot use.
func (c *Config) Validate() error {
	if c.History.Limit <= 0 {
		return fmt.Errorf("invalid history limit: %d (must be positive)", c.History.Limit)
	}
	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history is enabled but no path is set")
	}
	return nil
}

// HistoryPath returns the journal path, resolved against dir when relative.
func (c *Config) HistoryPath(dir string) string {
	if c.History.Path == "" || filepath.IsAbs(c.History.Path) {
		return c.History.Path
	}
	return filepath.Join(dir, c.History.Path)
}

// Load reads config.yaml from dir. A missing file yields the defaults;
// keys absent from the file keep their default values.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to config.yaml in dir.
func Save(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "bmi"), nil
}

// EnsureConfigDir creates dir if it doesn't exist. An empty dir means the default.
func EnsureConfigDir(dir string) (string, error) {
	if dir == "" {
		var err error
		dir, err = GetConfigDir()
		if err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
