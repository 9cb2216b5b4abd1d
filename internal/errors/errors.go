// Package errors provides the structured error types for zhv.
//
// Base errors (sentinel errors):
//   - ErrSelectorNotFound - external selector program unavailable
//   - ErrIO - file I/O error
//
// Wrapped error types (add context):
//   - SelectorError{Op, Err, Cmd} - selector invocation errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	// Use structured error types
//	return &errors.SelectorError{Op: "spawn", Err: errors.ErrSelectorNotFound, Cmd: "fzf"}
//
//	// Check error types
//	if errors.IsSelectorNotFound(err) {
//	    // handle missing selector
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrSelectorNotFound indicates the external selector program is unavailable.
	ErrSelectorNotFound = baseError("selector not found")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// SelectorError represents an error that occurred while invoking the
// interactive selector.
type SelectorError struct {
	// Op is the operation being performed (e.g., "spawn", "run").
	Op string
	// Err is the underlying error.
	Err error
	// Cmd is the selector command that was invoked (optional).
	Cmd string
}

func (e *SelectorError) Error() string {
	if e.Cmd != "" {
		return fmt.Sprintf("selector %s %q: %s", e.Op, e.Cmd, e.Err)
	}
	return fmt.Sprintf("selector %s: %s", e.Op, e.Err)
}

func (e *SelectorError) Unwrap() error { return e.Err }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IsSelectorNotFound reports whether err is or wraps ErrSelectorNotFound.
func IsSelectorNotFound(err error) bool {
	return errors.Is(err, ErrSelectorNotFound)
}

// AsSelectorError reports whether err can be typed as a *SelectorError.
func AsSelectorError(err error) (*SelectorError, bool) {
	var se *SelectorError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
