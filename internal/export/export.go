// Package export writes deduplicated history snapshots in various formats.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/a-godura/zsh-history-viewer/internal/format"
)

// Format represents the export format.
type Format string

const (
	// FormatMarkdown exports as Markdown.
	FormatMarkdown Format = "md"
	// FormatYAML exports as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON exports as JSON.
	FormatJSON Format = "json"
)

// Entry is one retained history record in a snapshot.
type Entry struct {
	ID      string `yaml:"id" json:"id"`
	Date    string `yaml:"date" json:"date"`
	Time    string `yaml:"time" json:"time"`
	Command string `yaml:"command" json:"command"`
}

// Snapshot is an exported view of the deduplicated history, newest first.
type Snapshot struct {
	ID        string    `yaml:"id" json:"id"`
	Title     string    `yaml:"title" json:"title"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
	Entries   []Entry   `yaml:"entries" json:"entries"`
}

// NewSnapshot builds a snapshot from parsed records.
func NewSnapshot(title string, records []format.Record) *Snapshot {
	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, Entry{
			ID:      r.ID,
			Date:    r.Date,
			Time:    r.Time,
			Command: r.Command,
		})
	}

	return &Snapshot{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
		Entries:   entries,
	}
}

// builtinMarkdownTemplate renders a snapshot as a Markdown document.
const builtinMarkdownTemplate = `# {{.Title}}

Snapshot {{.ID}}, created {{.CreatedAt.Format "2006-01-02 15:04"}} UTC.

| ID | Date | Time | Command |
|----|------|------|---------|
{{- range .Entries}}
| {{.ID}} | {{.Date}} | {{.Time}} | ` + "`{{.Command}}`" + ` |
{{- end}}
`

// Render serializes the snapshot in the given format.
func (s *Snapshot) Render(f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return buf.Bytes(), nil
	case FormatMarkdown:
		tmpl, err := template.New("export").Parse(builtinMarkdownTemplate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template: %w", err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, s); err != nil {
			return nil, fmt.Errorf("failed to render template: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
}

// FileName suggests a file name for the snapshot: a slug of the title plus
// the format extension.
func (s *Snapshot) FileName(f Format) string {
	slug := Slugify(s.Title)
	if slug == "" {
		slug = "history-snapshot"
	}
	return fmt.Sprintf("%s.%s", slug, f)
}
