// Package testutil provides helper functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteHistFile writes content to a temporary history file and returns the
// path. The file is automatically deleted when the test completes.
func WriteHistFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "zsh_history")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write history file: %v", err)
	}

	return path
}

// WriteScript writes an executable shell script into a temp dir and returns
// its path. Used to stand in for the external selector in tests.
func WriteScript(t *testing.T, name, body string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	return path
}
