// Package runner executes resolved commands through the user's shell,
// with dangerous-command detection.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// ExecConfig contains configuration for executing a command.
type ExecConfig struct {
	Command          string // Command text to execute (may span lines)
	Shell            string // Shell to use (zsh, bash, sh)
	ConfirmDangerous bool   // Prompt before running dangerous commands
	AutoConfirm      bool   // Warn instead of prompting
}

// ExecResult contains the result of executing a command.
type ExecResult struct {
	Command  string
	ExitCode int
	Success  bool
	Canceled bool
	Duration time.Duration
	Error    error
}

// Exec runs a command interactively: the subprocess inherits the caller's
// stdin/stdout/stderr, mirroring the command being typed at the prompt.
func Exec(ctx context.Context, config ExecConfig) ExecResult {
	startTime := time.Now()

	result := ExecResult{
		Command: config.Command,
	}

	if config.ConfirmDangerous {
		if danger := CheckDangerous(config.Command); danger != nil {
			if config.AutoConfirm {
				fmt.Fprintf(os.Stderr, "Warning: %s\n", danger.Warning())
			} else {
				confirmed, err := danger.Confirm()
				if err != nil {
					result.Error = err
					result.ExitCode = 1
					result.Duration = time.Since(startTime)
					return result
				}
				if !confirmed {
					result.Canceled = true
					result.ExitCode = 130
					result.Duration = time.Since(startTime)
					return result
				}
			}
		}
	}

	shell := config.Shell
	if shell == "" {
		shell = "zsh"
	}

	cmd := exec.CommandContext(ctx, shell, "-c", config.Command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	result.Duration = time.Since(startTime)

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = getExitCode(exitErr)
			result.Error = err
			return result
		}
		result.Error = err
		result.ExitCode = 1
		return result
	}

	result.Success = true
	return result
}

// getExitCode extracts the exit code from an exec.ExitError.
func getExitCode(err *exec.ExitError) int {
	if status, ok := err.Sys().(syscall.WaitStatus); ok {
		return status.ExitStatus()
	}
	return 1
}
