package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestSelectorError(t *testing.T) {
	err := &SelectorError{Op: "spawn", Err: ErrSelectorNotFound, Cmd: "fzf"}

	if !IsSelectorNotFound(err) {
		t.Error("IsSelectorNotFound() = false, want true")
	}
	if !strings.Contains(err.Error(), "fzf") {
		t.Errorf("Error() = %q, want command name included", err.Error())
	}

	se, ok := AsSelectorError(err)
	if !ok {
		t.Fatal("AsSelectorError() = false, want true")
	}
	if se.Op != "spawn" {
		t.Errorf("Op = %q, want spawn", se.Op)
	}

	// Without a command the message still names the operation.
	bare := &SelectorError{Op: "run", Err: ErrIO}
	if !strings.Contains(bare.Error(), "run") {
		t.Errorf("Error() = %q, want operation included", bare.Error())
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Path: "/etc/zhv.toml", Err: ErrIO}

	if !stderrors.Is(err, ErrIO) {
		t.Error("errors.Is(err, ErrIO) = false for wrapped sentinel")
	}
	if !strings.Contains(err.Error(), "/etc/zhv.toml") {
		t.Errorf("Error() = %q, want path included", err.Error())
	}

	// Without a path the message is still prefixed.
	bare := &ConfigError{Err: ErrIO}
	if !strings.HasPrefix(bare.Error(), "config:") {
		t.Errorf("Error() = %q, want config prefix", bare.Error())
	}
}

func TestIsSelectorNotFound(t *testing.T) {
	if IsSelectorNotFound(ErrIO) {
		t.Error("IsSelectorNotFound(ErrIO) = true")
	}
	if IsSelectorNotFound(nil) {
		t.Error("IsSelectorNotFound(nil) = true")
	}

	wrapped := fmt.Errorf("browse: %w", &SelectorError{Op: "spawn", Err: ErrSelectorNotFound})
	if !IsSelectorNotFound(wrapped) {
		t.Error("IsSelectorNotFound() = false through two wrapping layers")
	}
}
