// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for lazyreview.
//
// Configuration lives in ~/.lazyreview/config.toml, with built-in defaults
// and a small set of environment overrides applied on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete lazyreview configuration.
type Config struct {
	// UI configuration
	UI UIConfig `toml:"ui"`

	// Watch configuration
	Watch WatchConfig `toml:"watch"`
}

// UIConfig contains display configuration.
type UIConfig struct {
	// Theme selects the color theme: "dark", "light", or "auto"
	Theme string `toml:"theme"`
	// WordDiff enables word-level highlighting inside changed line pairs
	WordDiff bool `toml:"word_diff"`
	// SyntaxHighlight enables chroma highlighting for common text blocks
	SyntaxHighlight bool `toml:"syntax_highlight"`
	// ContextLines is the number of context lines shown around changes
	ContextLines int `toml:"context_lines"`
	// TabWidth is the number of columns a tab expands to
	TabWidth int `toml:"tab_width"`
}

// WatchConfig contains live-reload configuration for conflict views.
type WatchConfig struct {
	// Enabled turns on file watching when viewing a conflicted file
	Enabled bool `toml:"enabled"`
	// DebounceMs collapses bursts of file events within this window
	DebounceMs int `toml:"debounce_ms"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:           "auto",
			WordDiff:        true,
			SyntaxHighlight: true,
			ContextLines:    3,
			TabWidth:        4,
		},
		Watch: WatchConfig{
			Enabled:    false,
			DebounceMs: 200,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// Dir returns the lazyreview configuration directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".lazyreview"), nil
}

// Path returns the path to the TOML config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureDir ensures the config directory exists.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOADING
// =============================================================================

// Load loads configuration from the config file, falling back to defaults
// when no file exists. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from an explicit file path. A missing
// file is not an error; it yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides to the config.
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("LAZYREVIEW_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// SetDefaults fills zero values that a hand-edited config may have dropped.
func (c *Config) SetDefaults() {
	if c.UI.Theme == "" {
		c.UI.Theme = "auto"
	}
	if c.UI.ContextLines == 0 {
		c.UI.ContextLines = 3
	}
	if c.UI.TabWidth == 0 {
		c.UI.TabWidth = 4
	}
	if c.Watch.DebounceMs == 0 {
		c.Watch.DebounceMs = 200
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the validation error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.UI.Theme) {
	case "dark", "light", "auto":
	default:
		return ValidationError{Field: "ui.theme", Message: fmt.Sprintf("unknown theme %q (want dark, light, or auto)", c.UI.Theme)}
	}

	if c.UI.ContextLines < 0 {
		return ValidationError{Field: "ui.context_lines", Message: "must not be negative"}
	}
	if c.UI.TabWidth < 1 || c.UI.TabWidth > 16 {
		return ValidationError{Field: "ui.tab_width", Message: "must be between 1 and 16"}
	}
	if c.Watch.DebounceMs < 0 {
		return ValidationError{Field: "watch.debounce_ms", Message: "must not be negative"}
	}

	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the default config file path.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to an explicit file path.
func SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	// Write header comment
	fmt.Fprintln(file, "# lazyreview configuration file")
	fmt.Fprintln(file, "# Generated by lazyreview - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
