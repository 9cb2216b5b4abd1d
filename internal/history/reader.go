package history

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReaderSource reads pre-rendered raw history lines from a stream.
//
// This is the path used when the host shell pipes its own `fc -lt` output
// into zhv: the lines arrive already numbered and newest-first, so they are
// passed through untouched. Malformed lines are the formatter's problem.
type ReaderSource struct {
	R io.Reader
}

// NewReaderSource creates a ReaderSource reading from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{R: r}
}

// Fetch returns at most limit non-blank lines from the stream, in stream
// order. The stream is expected to be newest-first already.
func (s *ReaderSource) Fetch(limit int) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(s.R)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if limit > 0 && len(lines) >= limit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading history stream: %w", err)
	}
	return lines, nil
}
