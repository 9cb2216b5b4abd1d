// Package bridge hands the dispatcher's outcome to the host shell.
//
// The host line editor owns the actual edit buffer; the core never touches
// it directly. The shell bridge realizes the contract as a thin stdout +
// exit-code protocol consumed by the zle widget wrapper, and the exec
// bridge runs the command itself for standalone use.
package bridge

import (
	"fmt"
	"io"
)

// Exit codes of the shell bridge protocol. The widget wrapper reads the
// command text from stdout and maps the exit code to a zle action:
//
//	0 - place the text in the edit buffer (no-op when stdout is empty)
//	2 - hard failure, leave the buffer untouched
//	3 - place the text in the buffer and accept the line
const (
	ExitEdit    = 0
	ExitFailure = 2
	ExitExecute = 3
)

// Bridge applies a dispatch outcome to the host session.
type Bridge interface {
	// PlaceInEditBuffer replaces the host's input buffer with text,
	// leaving it uncommitted.
	PlaceInEditBuffer(text string) error

	// ExecuteImmediately replaces the buffer with text and triggers the
	// host's accept-line action.
	ExecuteImmediately(text string) error
}

// Shell is the widget-facing bridge: it writes the resolved text to its
// output stream and records the exit code for the wrapper to act on.
type Shell struct {
	Out      io.Writer
	exitCode int
}

// NewShell creates a Shell bridge writing to out.
func NewShell(out io.Writer) *Shell {
	return &Shell{Out: out, exitCode: ExitEdit}
}

// PlaceInEditBuffer implements Bridge.
func (s *Shell) PlaceInEditBuffer(text string) error {
	s.exitCode = ExitEdit
	_, err := fmt.Fprintln(s.Out, text)
	return err
}

// ExecuteImmediately implements Bridge.
func (s *Shell) ExecuteImmediately(text string) error {
	s.exitCode = ExitExecute
	_, err := fmt.Fprintln(s.Out, text)
	return err
}

// ExitCode returns the process exit code the wrapper should observe.
func (s *Shell) ExitCode() int {
	return s.exitCode
}
