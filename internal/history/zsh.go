package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FileSource reads records from a zsh history file.
//
// It understands both the extended format written with EXTENDED_HISTORY
// (": <timestamp>:<elapsed>;<command>") and the plain one-command-per-line
// format. Multi-line commands use backslash continuation.
type FileSource struct {
	// Path is the history file path. Empty means auto-detect.
	Path string

	// SkipPrefixes lists first words of commands to drop during parsing.
	SkipPrefixes []string
}

// NewFileSource creates a FileSource for the given path.
// An empty path enables auto-detection at Fetch time.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// extendedRegex matches a zsh extended-history entry line.
// The elapsed-seconds field is captured but unused.
var extendedRegex = regexp.MustCompile(`^:\s*(\d+):(\d+);(.*)`)

// Fetch reads the history file and returns at most limit raw lines,
// newest first. Event IDs are assigned chronologically over the whole
// file so the most recent command carries the highest ID.
func (s *FileSource) Fetch(limit int) ([]string, error) {
	path := s.Path
	if path == "" {
		detected, err := DetectHistFile()
		if err != nil {
			return nil, err
		}
		path = detected
	}

	records, err := s.parse(path)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}

	// Newest first.
	lines := make([]string, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		lines = append(lines, RawLine(records[i]))
	}
	return lines, nil
}

// parse reads the whole history file in chronological order.
func (s *FileSource) parse(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing history is routine, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var currentCmd strings.Builder
	var currentTimestamp time.Time
	var pendingBackslash bool
	inEntry := false

	flush := func() {
		if !inEntry {
			return
		}
		cmd := strings.TrimSpace(currentCmd.String())
		if cmd != "" && !s.shouldSkipCommand(cmd) {
			records = append(records, Record{
				ID:        len(records) + 1,
				Timestamp: currentTimestamp,
				Command:   cmd,
			})
		}
		currentCmd.Reset()
		inEntry = false
	}

	for scanner.Scan() {
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		if matches := extendedRegex.FindStringSubmatch(line); matches != nil {
			if pendingBackslash && inEntry {
				// Continuation split across entry-shaped lines.
				joinContinuation(&currentCmd, matches[3])
				pendingBackslash = strings.HasSuffix(matches[3], "\\")
				continue
			}

			flush()

			ts, err := strconv.ParseInt(matches[1], 10, 64)
			if err == nil {
				currentTimestamp = time.Unix(ts, 0)
			} else {
				currentTimestamp = time.Time{}
			}
			currentCmd.WriteString(matches[3])
			pendingBackslash = strings.HasSuffix(matches[3], "\\")
			inEntry = true
			continue
		}

		if inEntry && pendingBackslash {
			joinContinuation(&currentCmd, line)
			pendingBackslash = strings.HasSuffix(line, "\\")
			continue
		}

		// Plain (non-extended) history line: one command per line.
		flush()
		currentTimestamp = time.Time{}
		currentCmd.WriteString(line)
		pendingBackslash = strings.HasSuffix(line, "\\")
		inEntry = true
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading history file: %w", err)
	}

	return records, nil
}

// joinContinuation appends a continuation line, removing the trailing
// backslash of the accumulated text.
func joinContinuation(b *strings.Builder, next string) {
	soFar := strings.TrimSuffix(b.String(), "\\")
	soFar = strings.TrimRight(soFar, " \t")
	b.Reset()
	b.WriteString(soFar)
	b.WriteString("\n")
	b.WriteString(next)
}

// shouldSkipCommand returns true if a command should be skipped.
func (s *FileSource) shouldSkipCommand(cmd string) bool {
	if len(s.SkipPrefixes) == 0 {
		return false
	}

	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return true
	}

	for _, skip := range s.SkipPrefixes {
		if fields[0] == skip {
			return true
		}
	}
	return false
}

// DetectHistFile returns the path to the zsh history file.
// $HISTFILE wins; otherwise common locations are checked.
func DetectHistFile() (string, error) {
	if path := os.Getenv("HISTFILE"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	locations := []string{
		filepath.Join(home, ".zsh_history"),
		filepath.Join(home, ".zhistory"),
		filepath.Join(home, ".histfile"),
	}

	for _, path := range locations {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	// Return default even if it doesn't exist.
	return filepath.Join(home, ".zsh_history"), nil
}
