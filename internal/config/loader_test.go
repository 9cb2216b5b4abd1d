package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoad_ValidConfig tests loading a valid config file.
func TestLoad_ValidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	configContent := `
[history]
limit = 250
file = "/tmp/test_history"

[selector]
command = "sk"
execute_key = "ctrl-e"
fallback = "builtin"

[exec]
shell = "bash"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.History.Limit != 250 {
		t.Errorf("history.limit = %d, want 250", cfg.History.Limit)
	}
	if cfg.Selector.Command != "sk" {
		t.Errorf("selector.command = %q, want sk", cfg.Selector.Command)
	}
	if cfg.Selector.ExecuteKey != "ctrl-e" {
		t.Errorf("selector.execute_key = %q, want ctrl-e", cfg.Selector.ExecuteKey)
	}
	if cfg.Exec.Shell != "bash" {
		t.Errorf("exec.shell = %q, want bash", cfg.Exec.Shell)
	}

	// Unset fields keep their defaults.
	if cfg.Selector.Prompt != "history> " {
		t.Errorf("selector.prompt = %q, want default", cfg.Selector.Prompt)
	}
}

// TestLoad_MissingFile tests that loading a missing file fails.
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load() = nil error for missing file")
	}
}

// TestLoad_InvalidConfig tests that validation failures surface.
func TestLoad_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	configContent := `
[selector]
fallback = "whatever"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("Load() = nil error for invalid fallback")
	}
}

// TestLoad_EmptyExecuteKeyRejected tests that a config clearing the
// execute key fails validation: the selector is always invoked with
// --expect, so its output always carries a key line.
func TestLoad_EmptyExecuteKeyRejected(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	configContent := `
[selector]
execute_key = ""
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() = nil error for empty execute_key")
	}
	if !strings.Contains(err.Error(), "selector.execute_key") {
		t.Errorf("Load() error = %v, want mention of selector.execute_key", err)
	}
}

// TestLoadWithDefaults_NoFile returns pure defaults when nothing exists.
func TestLoadWithDefaults_NoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadWithDefaults("")
	if err != nil {
		t.Fatalf("LoadWithDefaults() returned error: %v", err)
	}
	if cfg.Selector.Command != "fzf" {
		t.Errorf("selector.command = %q, want default fzf", cfg.Selector.Command)
	}
}

// TestEnvOverrides tests ZHV_* environment variable overrides.
func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ZHV_HISTORY_LIMIT", "42")
	t.Setenv("ZHV_SELECTOR_COMMAND", "fzy")
	t.Setenv("ZHV_SELECTOR_EXECUTE_KEY", "ctrl-o")

	cfg, err := LoadWithDefaults("")
	if err != nil {
		t.Fatalf("LoadWithDefaults() returned error: %v", err)
	}

	if cfg.History.Limit != 42 {
		t.Errorf("history.limit = %d, want 42 from env", cfg.History.Limit)
	}
	if cfg.Selector.Command != "fzy" {
		t.Errorf("selector.command = %q, want fzy from env", cfg.Selector.Command)
	}
	if cfg.Selector.ExecuteKey != "ctrl-o" {
		t.Errorf("selector.execute_key = %q, want ctrl-o from env", cfg.Selector.ExecuteKey)
	}
}

// TestWriteAndLoad round-trips a config through Write and Load.
func TestWriteAndLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.History.Limit = 123
	cfg.Selector.Prompt = "pick> "

	if err := Write(configPath, cfg); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if loaded.History.Limit != 123 {
		t.Errorf("history.limit = %d, want 123", loaded.History.Limit)
	}
	if loaded.Selector.Prompt != "pick> " {
		t.Errorf("selector.prompt = %q, want pick> ", loaded.Selector.Prompt)
	}
}
