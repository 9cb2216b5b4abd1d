// Package dispatch interprets the interactive selector's combined output
// and decides what the host shell should do with it.
package dispatch

import (
	"regexp"
	"strings"
)

// Action is the terminal decision for one pipeline invocation.
type Action int

const (
	// ActionNone means take no action; the current buffer is untouched.
	ActionNone Action = iota

	// ActionEdit places the command in the edit buffer, uncommitted.
	ActionEdit

	// ActionExecute places the command in the buffer and runs it.
	ActionExecute
)

// Outcome is the dispatcher's result, handed to the bridge.
type Outcome struct {
	Action  Action
	Command string
}

// Selection is the parsed selector output: the key that confirmed the
// selection (empty for the default key) and the chosen candidate lines.
type Selection struct {
	Key   string
	Lines []string
}

// columnPrefix matches the leading ID/DATE/TIME columns of a candidate
// line: optional whitespace, a numeric id, a date token containing "/",
// and an hour:minute time token. Everything after it is the original
// command text.
//
// Date tokens without a slash, or time tokens of another width, fall
// through to the pass-through branch in StripColumns.
var columnPrefix = regexp.MustCompile(`^\s*\d+\s+\d+(?:/\d+)+\s+\d{1,2}:\d{2}\s+`)

// ParseSelection splits the selector's raw output into the pressed key and
// the selected lines. Empty output means the user cancelled.
func ParseSelection(rawOutput string) Selection {
	if rawOutput == "" {
		return Selection{}
	}

	lines := strings.Split(strings.TrimRight(rawOutput, "\n"), "\n")
	return Selection{
		Key:   lines[0],
		Lines: lines[1:],
	}
}

// StripColumns removes the ID/DATE/TIME prefix from a candidate line,
// recovering the original command text. Lines that do not carry the
// expected prefix are returned unchanged.
func StripColumns(line string) string {
	if loc := columnPrefix.FindStringIndex(line); loc != nil {
		return line[loc[1]:]
	}
	return line
}

// Dispatch turns the selector's raw output into an outcome.
//
// Empty output, a selection with no lines, and a selection whose recovered
// command text is empty all yield ActionNone: ambiguous input never mutates
// the host buffer. The executeKey decides between edit and execute.
func Dispatch(rawOutput, executeKey string) Outcome {
	sel := ParseSelection(rawOutput)
	if len(sel.Lines) == 0 {
		return Outcome{Action: ActionNone}
	}

	commands := make([]string, 0, len(sel.Lines))
	for _, line := range sel.Lines {
		commands = append(commands, StripColumns(line))
	}

	command := strings.Join(commands, "\n")
	if strings.TrimSpace(command) == "" {
		return Outcome{Action: ActionNone}
	}

	if executeKey != "" && sel.Key == executeKey {
		return Outcome{Action: ActionExecute, Command: command}
	}
	return Outcome{Action: ActionEdit, Command: command}
}
