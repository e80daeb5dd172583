// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	dataDir       string // Path to the dailyflo data directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/dailyflo)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, domain.DataDirName)
}

// Load returns the merged configuration.
// The local (data dir) config takes precedence over the global config,
// which takes precedence over built-in defaults.
func (l *Loader) Load() (*domain.Config, error) {
	var global, local *domain.Config
	var err error

	if l.globalConfDir != "" {
		global, err = l.loadFile(domain.ConfigPath(l.globalConfDir))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	local, err = l.loadFile(domain.ConfigPath(l.dataDir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	validate(base)
	return base, nil
}

// loadFile loads a configuration from a single TOML file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays set fields of over onto base.
func mergeConfigs(base, over *domain.Config) *domain.Config {
	merged := *base
	if over.SortBy != "" {
		merged.SortBy = over.SortBy
	}
	if over.Direction != "" {
		merged.Direction = over.Direction
	}
	if over.GroupBy != "" {
		merged.GroupBy = over.GroupBy
	}
	if over.LogLevel != "" {
		merged.LogLevel = over.LogLevel
	}
	if over.AccentColor != "" {
		merged.AccentColor = over.AccentColor
	}
	if over.ShowCompleted {
		merged.ShowCompleted = true
	}
	return &merged
}

// validate replaces invalid enum values with defaults and records a
// warning for each, rather than failing the load.
func validate(cfg *domain.Config) {
	defaults := domain.NewDefaultConfig()
	if !cfg.SortBy.Valid() {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown sort_by %q, using %q", cfg.SortBy, defaults.SortBy))
		cfg.SortBy = defaults.SortBy
	}
	if !cfg.Direction.Valid() {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown direction %q, using %q", cfg.Direction, defaults.Direction))
		cfg.Direction = defaults.Direction
	}
	if !cfg.GroupBy.Valid() {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown group_by %q, using %q", cfg.GroupBy, defaults.GroupBy))
		cfg.GroupBy = defaults.GroupBy
	}
}

// WriteDefault writes the default configuration to the data directory.
// Returns ErrConfigExists if a config file is already present.
func (l *Loader) WriteDefault() (string, error) {
	path := domain.ConfigPath(l.dataDir)
	if _, err := os.Stat(path); err == nil {
		return path, domain.ErrConfigExists
	}

	if err := os.MkdirAll(l.dataDir, 0o750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(domain.NewDefaultConfig())
	if err != nil {
		return "", fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	return path, nil
}
