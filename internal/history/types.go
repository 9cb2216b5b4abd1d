package history

import (
	"fmt"
	"strings"
	"time"
)

// Record represents a single numbered command from shell history.
type Record struct {
	// ID is the history event number. Higher means more recent.
	ID int

	// Timestamp is when the command was executed. May be zero when the
	// history file carries no timestamps.
	Timestamp time.Time

	// Command is the command text as entered.
	Command string
}

// Source supplies raw history lines to the formatting pipeline.
//
// Fetch returns at most limit lines, newest first. Each line has the shape
//
//	<id> <mm/dd/yyyy> <hh:mm> <command...>
//
// matching what `fc -lt` prints inside the host shell. An empty history is
// not an error; Fetch returns an empty slice.
type Source interface {
	Fetch(limit int) ([]string, error)
}

// Layouts for the human-readable timestamp fields of a raw line.
const (
	DateLayout = "01/02/2006"
	TimeLayout = "15:04"
)

// RawLine renders a record as a single raw history line.
// Internal newlines are flattened to spaces so the line-oriented
// selector protocol stays intact.
func RawLine(r Record) string {
	cmd := strings.ReplaceAll(r.Command, "\n", " ")
	return fmt.Sprintf("%d %s %s %s",
		r.ID, r.Timestamp.Format(DateLayout), r.Timestamp.Format(TimeLayout), cmd)
}
