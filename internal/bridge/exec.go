package bridge

import (
	"context"
	"fmt"
	"io"

	"github.com/a-godura/zsh-history-viewer/internal/runner"
)

// Exec is the standalone bridge used outside a line-editor widget: there
// is no edit buffer to fill, so edit outcomes print the command for the
// user and execute outcomes run it through the shell.
type Exec struct {
	Ctx              context.Context
	Out              io.Writer
	Shell            string
	ConfirmDangerous bool
	AutoConfirm      bool

	exitCode int
}

// NewExec creates an Exec bridge.
func NewExec(ctx context.Context, out io.Writer, shell string) *Exec {
	return &Exec{
		Ctx:              ctx,
		Out:              out,
		Shell:            shell,
		ConfirmDangerous: true,
	}
}

// PlaceInEditBuffer implements Bridge by printing the command text.
func (e *Exec) PlaceInEditBuffer(text string) error {
	e.exitCode = 0
	_, err := fmt.Fprintln(e.Out, text)
	return err
}

// ExecuteImmediately implements Bridge by running the command through the
// configured shell, inheriting the terminal.
func (e *Exec) ExecuteImmediately(text string) error {
	result := runner.Exec(e.Ctx, runner.ExecConfig{
		Command:          text,
		Shell:            e.Shell,
		ConfirmDangerous: e.ConfirmDangerous,
		AutoConfirm:      e.AutoConfirm,
	})

	e.exitCode = result.ExitCode
	if result.Canceled {
		return nil
	}
	if result.Error != nil && !result.Success {
		return fmt.Errorf("command failed: %w", result.Error)
	}
	return nil
}

// ExitCode returns the exit code of the executed command, or 0.
func (e *Exec) ExitCode() int {
	return e.exitCode
}
