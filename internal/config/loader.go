// Package config provides configuration management for zhv.
//
// This file contains config loading functionality including:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/a-godura/zsh-history-viewer/internal/errors"
)

// DetectConfigPath searches for a config file using XDG standard paths.
// Returns the first config file found, or empty string if none exists.
//
// Search order:
// 1. $XDG_CONFIG_HOME/zhv/config.toml
// 2. ~/.config/zhv/config.toml
//
// Returns empty string if no config file is found (caller should use defaults).
func DetectConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configPath := filepath.Join(xdg, "zhv", "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	configPath := filepath.Join(homeDir, ".config", "zhv", "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// DefaultConfigPath returns where a new config file should be written:
// $XDG_CONFIG_HOME/zhv/config.toml, falling back to ~/.config/zhv/config.toml.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "zhv", "config.toml")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "zhv", "config.toml")
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &errors.ConfigError{Path: path, Err: errors.ErrIO}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}

	applyEnvOverrides(cfg)
	expandPaths(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from XDG standard paths.
// If no config file is found, returns a config with all default values.
// If a config file is found but fails to load/validate, returns an error.
func LoadWithDefaults(path string) (*Config, error) {
	if path == "" {
		path = DetectConfigPath()
	}

	if path == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		expandPaths(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, &errors.ConfigError{Err: err}
		}
		return cfg, nil
	}

	return Load(path)
}

// applyEnvOverrides applies ZHV_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ZHV_HISTORY_FILE"); v != "" {
		cfg.History.File = v
	}
	if v := os.Getenv("ZHV_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.History.Limit = n
		}
	}
	if v := os.Getenv("ZHV_SELECTOR_COMMAND"); v != "" {
		cfg.Selector.Command = v
	}
	if v := os.Getenv("ZHV_SELECTOR_EXECUTE_KEY"); v != "" {
		cfg.Selector.ExecuteKey = v
	}
	if v := os.Getenv("ZHV_SELECTOR_FALLBACK"); v != "" {
		cfg.Selector.Fallback = v
	}
	if v := os.Getenv("ZHV_EXEC_SHELL"); v != "" {
		cfg.Exec.Shell = v
	}
}

// expandPaths expands a leading tilde in path-valued fields.
func expandPaths(cfg *Config) {
	cfg.History.File = expandTilde(cfg.History.File)
}

// expandTilde replaces a leading "~/" with the user's home directory.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
