package bridge

import (
	"bytes"
	"testing"
)

func TestShell_PlaceInEditBuffer(t *testing.T) {
	var buf bytes.Buffer
	s := NewShell(&buf)

	if err := s.PlaceInEditBuffer("git status"); err != nil {
		t.Fatalf("PlaceInEditBuffer() error = %v", err)
	}

	if got := buf.String(); got != "git status\n" {
		t.Errorf("output = %q, want command plus newline", got)
	}
	if s.ExitCode() != ExitEdit {
		t.Errorf("ExitCode() = %d, want %d", s.ExitCode(), ExitEdit)
	}
}

func TestShell_ExecuteImmediately(t *testing.T) {
	var buf bytes.Buffer
	s := NewShell(&buf)

	if err := s.ExecuteImmediately("make test"); err != nil {
		t.Fatalf("ExecuteImmediately() error = %v", err)
	}

	if got := buf.String(); got != "make test\n" {
		t.Errorf("output = %q, want command plus newline", got)
	}
	if s.ExitCode() != ExitExecute {
		t.Errorf("ExitCode() = %d, want %d", s.ExitCode(), ExitExecute)
	}
}

func TestShell_DefaultExitCode(t *testing.T) {
	s := NewShell(&bytes.Buffer{})
	if s.ExitCode() != ExitEdit {
		t.Errorf("ExitCode() = %d, want %d before any action", s.ExitCode(), ExitEdit)
	}
}

func TestShell_MultiLineText(t *testing.T) {
	var buf bytes.Buffer
	s := NewShell(&buf)

	if err := s.PlaceInEditBuffer("echo a\necho b"); err != nil {
		t.Fatalf("PlaceInEditBuffer() error = %v", err)
	}
	if got := buf.String(); got != "echo a\necho b\n" {
		t.Errorf("output = %q, want both lines preserved", got)
	}
}
