// Package format turns raw history lines into the column-aligned candidate
// list handed to the interactive selector.
//
// Raw lines have the shape `<id> <date> <time> <command...>`. The formatter
// discards malformed lines, deduplicates by exact command text keeping the
// most recent occurrence, and renders fixed-width columns with a header row.
package format

import (
	"fmt"
	"strings"
)

// Column widths for the fixed fields. The command column is the last one
// and stays unpadded.
const (
	idWidth   = 8
	dateWidth = 7
	timeWidth = 7
)

// Record is one parsed raw history line.
type Record struct {
	ID      string
	Date    string
	Time    string
	Command string
}

// ParseRaw splits a raw history line into its fields.
//
// The first three whitespace-delimited tokens are id, date and time; the
// rest is the command, re-joined with single spaces. Consecutive whitespace
// inside the original command is therefore normalized, which is accepted as
// lossy. Lines with fewer than four tokens or a non-numeric id are rejected.
func ParseRaw(line string) (Record, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Record{}, false
	}
	if !allDigits(fields[0]) {
		return Record{}, false
	}

	return Record{
		ID:      fields[0],
		Date:    fields[1],
		Time:    fields[2],
		Command: strings.Join(fields[3:], " "),
	}, true
}

// allDigits reports whether s is non-empty and contains only ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Dedupe parses raw history lines and drops duplicates by exact command
// text. Input is expected newest-first, so the first occurrence of each
// command wins and the older repeats are dropped. The seen map is used for
// membership only; ordering comes from the input. Malformed lines are
// silently discarded.
func Dedupe(rawLines []string) []Record {
	records := make([]Record, 0, len(rawLines))
	seen := make(map[string]bool, len(rawLines))

	for _, raw := range rawLines {
		rec, ok := ParseRaw(raw)
		if !ok {
			continue
		}
		if seen[rec.Command] {
			continue
		}
		seen[rec.Command] = true
		records = append(records, rec)
	}

	return records
}

// ShortDate strips the trailing "/year" suffix from a month/day/year date,
// keeping only the month/day portion. Dates without a "/" pass through
// unchanged.
func ShortDate(date string) string {
	if i := strings.LastIndex(date, "/"); i > 0 {
		return date[:i]
	}
	return date
}

// Header returns the column header line.
func Header() string {
	return Line(Record{ID: "ID", Date: "DATE", Time: "TIME", Command: "COMMAND"})
}

// Line renders one record as a fixed-width candidate line.
func Line(r Record) string {
	return fmt.Sprintf("%-*s %-*s %-*s %s",
		idWidth, r.ID, dateWidth, r.Date, timeWidth, r.Time, r.Command)
}

// Format renders raw history lines as a candidate list: one header line
// followed by one line per retained record, in input order. Empty input
// yields the header alone.
func Format(rawLines []string) []string {
	records := Dedupe(rawLines)

	out := make([]string, 0, len(records)+1)
	out = append(out, Header())
	for _, rec := range records {
		rec.Date = ShortDate(rec.Date)
		out = append(out, Line(rec))
	}

	return out
}
