// Package config loads portanav settings from a TOML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Environment overrides, applied after the file.
const (
	EnvLocale      = "PORTANAV_LOCALE"
	EnvMaxDepth    = "PORTANAV_MAX_DEPTH"
	EnvSnapshotDir = "PORTANAV_SNAPSHOT_DIR"
	EnvLogFile     = "PORTANAV_LOG_FILE"
	EnvLogLevel    = "PORTANAV_LOG_LEVEL"
)

// Config is the full settings tree.
type Config struct {
	Locale     string           `toml:"locale"`
	Navigation NavigationConfig `toml:"navigation"`
	Display    DisplayConfig    `toml:"display"`
	Snapshot   SnapshotConfig   `toml:"snapshot"`
	Log        LogConfig        `toml:"log"`
}

// NavigationConfig bounds the view stack.
type NavigationConfig struct {
	MaxDepth int `toml:"max_depth"`
	History  int `toml:"history"` // transitions kept for the debug screen
}

// DisplayConfig overrides status bar captions. Empty values use the
// locale's text.
type DisplayConfig struct {
	DefaultTitle string `toml:"default_title"`
	BackEnabled  string `toml:"back_enabled"`
	BackDisabled string `toml:"back_disabled"`
	Camera       string `toml:"camera"`
	Sleep        string `toml:"sleep"`
}

// SnapshotConfig controls screen captures.
type SnapshotConfig struct {
	Dir      string `toml:"dir"`
	Pattern  string `toml:"pattern"`
	CopyPath bool   `toml:"copy_path"`
}

// LogConfig controls the log file. An empty File disables logging.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Locale: "en",
		Navigation: NavigationConfig{
			MaxDepth: 32,
			History:  50,
		},
		Snapshot: SnapshotConfig{
			Pattern: "SCR_????",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "portanav", "config.toml"), nil
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLocale); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv(EnvMaxDepth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxDepth, err)
		}
		cfg.Navigation.MaxDepth = n
	}
	if v := os.Getenv(EnvSnapshotDir); v != "" {
		cfg.Snapshot.Dir = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// Validate rejects settings the shell cannot run with.
func (c Config) Validate() error {
	if c.Navigation.MaxDepth < 2 {
		return fmt.Errorf("navigation.max_depth must be at least 2, got %d", c.Navigation.MaxDepth)
	}
	if c.Navigation.History < 0 {
		return fmt.Errorf("navigation.history must not be negative, got %d", c.Navigation.History)
	}
	return nil
}
