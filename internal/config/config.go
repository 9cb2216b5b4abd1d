// Package config provides configuration management for zhv.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"strings"
)

// Config is the top-level configuration struct for zhv.
// It contains all configuration sections as embedded structs.
type Config struct {
	History  HistoryConfig  `toml:"history"`
	Selector SelectorConfig `toml:"selector"`
	Exec     ExecConfig     `toml:"exec"`
}

// HistoryConfig contains history source settings.
type HistoryConfig struct {
	// File is the history file path. Empty means auto-detect
	// ($HISTFILE, then the usual zsh locations).
	File string `toml:"file"`

	// Limit bounds how many records are requested (default: 1000).
	Limit int `toml:"limit"`

	// SkipPrefixes lists first words of commands to drop when reading
	// the history file directly.
	SkipPrefixes []string `toml:"skip_prefixes"`
}

// SelectorConfig contains interactive selector settings.
type SelectorConfig struct {
	// Command is the external selector program (default: "fzf").
	Command string `toml:"command"`

	// Args are extra arguments appended to the selector command line.
	Args []string `toml:"args"`

	// ExecuteKey is the alternate-action key that triggers immediate
	// execution instead of editing (default: "ctrl-x").
	ExecuteKey string `toml:"execute_key"`

	// Prompt is the selector's filter prompt.
	Prompt string `toml:"prompt"`

	// Header is the hint text shown above the candidate list.
	Header string `toml:"header"`

	// Fallback controls what happens when the external selector is
	// missing. Valid values: "none" (fail closed), "builtin".
	Fallback string `toml:"fallback"`
}

// ExecConfig contains settings for running selected commands directly.
type ExecConfig struct {
	// Shell is the shell used to execute commands (default: "zsh").
	Shell string `toml:"shell"`

	// ConfirmDangerous prompts before running commands that match the
	// dangerous-command patterns.
	ConfirmDangerous bool `toml:"confirm_dangerous"`
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			File:  "",
			Limit: 1000,
		},
		Selector: SelectorConfig{
			Command:    "fzf",
			ExecuteKey: "ctrl-x",
			Prompt:     "history> ",
			Header:     "enter: edit line, ctrl-x: execute",
			Fallback:   "none",
		},
		Exec: ExecConfig{
			Shell:            "zsh",
			ConfirmDangerous: true,
		},
	}
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must be non-negative, got %d", c.History.Limit)
	}

	if strings.TrimSpace(c.Selector.Command) == "" {
		return fmt.Errorf("selector.command must not be empty")
	}

	// The selector output contract needs a key line, so an execute key must
	// always be configured for --expect.
	if strings.TrimSpace(c.Selector.ExecuteKey) == "" {
		return fmt.Errorf("selector.execute_key must not be empty")
	}

	switch c.Selector.Fallback {
	case "", "none", "builtin":
	default:
		return fmt.Errorf("selector.fallback must be \"none\" or \"builtin\", got %q", c.Selector.Fallback)
	}

	switch c.Exec.Shell {
	case "", "zsh", "bash", "sh":
	default:
		return fmt.Errorf("exec.shell must be one of zsh, bash, sh, got %q", c.Exec.Shell)
	}

	return nil
}
