// Package stats computes usage summaries over deduplicated history.
package stats

import (
	"sort"
	"strings"

	"github.com/a-godura/zsh-history-viewer/internal/format"
)

// Row is one aggregated program in the usage report.
type Row struct {
	// Program is the first word of the command.
	Program string

	// Count is how many distinct history entries start with Program.
	Count int

	// LastUsed is the date/time of the most recent entry, as rendered in
	// the raw history line.
	LastUsed string
}

// Compute aggregates deduplicated records (newest first) by leading
// program name. Rows are sorted by descending count, ties broken
// alphabetically.
func Compute(records []format.Record) []Row {
	type agg struct {
		count    int
		lastUsed string
	}

	byProgram := make(map[string]*agg)

	for _, rec := range records {
		program := rec.Command
		if i := strings.IndexByte(program, ' '); i > 0 {
			program = program[:i]
		}

		a, ok := byProgram[program]
		if !ok {
			// Input is newest-first, so the first sighting is the most
			// recent use.
			a = &agg{lastUsed: rec.Date + " " + rec.Time}
			byProgram[program] = a
		}
		a.count++
	}

	rows := make([]Row, 0, len(byProgram))
	for program, a := range byProgram {
		rows = append(rows, Row{Program: program, Count: a.count, LastUsed: a.lastUsed})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Program < rows[j].Program
	})

	return rows
}
