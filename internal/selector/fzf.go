package selector

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/a-godura/zsh-history-viewer/internal/errors"
)

// Fzf runs an external fzf-compatible program as the interactive selector.
type Fzf struct {
	// Command is the program name or path (default "fzf").
	Command string

	// ExtraArgs are appended after the generated arguments, letting users
	// pass their own fzf flags from config.
	ExtraArgs []string
}

// NewFzf creates an Fzf selector for the given command.
func NewFzf(command string, extraArgs []string) *Fzf {
	if command == "" {
		command = "fzf"
	}
	return &Fzf{Command: command, ExtraArgs: extraArgs}
}

// Pick spawns the selector with the candidates on stdin and returns its
// raw output.
//
// The subprocess takes over the terminal until the user confirms or
// aborts; abort (exit 130) and no-match (exit 1) are both reported as an
// empty output with a nil error. A missing program fails closed with
// ErrSelectorNotFound.
func (f *Fzf) Pick(ctx context.Context, candidates []string, opts Options) (string, error) {
	path, err := exec.LookPath(f.Command)
	if err != nil {
		return "", &errors.SelectorError{Op: "spawn", Err: errors.ErrSelectorNotFound, Cmd: f.Command}
	}

	cmd := exec.CommandContext(ctx, path, f.buildArgs(opts)...)
	cmd.Stdin = strings.NewReader(strings.Join(candidates, "\n") + "\n")
	cmd.Stderr = os.Stderr

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			switch exitErr.ExitCode() {
			case 1, 130:
				// No match or user abort: a no-op, not an error.
				return "", nil
			}
		}
		return "", &errors.SelectorError{Op: "run", Err: err, Cmd: f.Command}
	}

	return out.String(), nil
}

// buildArgs assembles the fzf argument list for one invocation.
//
// The first candidate line is the column header and must stay frozen and
// non-selectable; selection order must follow the original list, not match
// score, so the dispatcher sees rows in candidate order.
func (f *Fzf) buildArgs(opts Options) []string {
	args := []string{
		"--multi",
		"--no-sort",
		"--header-lines=1",
	}

	if opts.ExecuteKey != "" {
		args = append(args, fmt.Sprintf("--expect=%s", opts.ExecuteKey))
	}
	if opts.Query != "" {
		args = append(args, fmt.Sprintf("--query=%s", opts.Query))
	}
	if opts.Prompt != "" {
		args = append(args, fmt.Sprintf("--prompt=%s", opts.Prompt))
	}
	if opts.Header != "" {
		args = append(args, fmt.Sprintf("--header=%s", opts.Header))
	}

	return append(args, f.ExtraArgs...)
}
