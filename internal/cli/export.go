package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/a-godura/zsh-history-viewer/internal/config"
	"github.com/a-godura/zsh-history-viewer/internal/export"
	"github.com/a-godura/zsh-history-viewer/internal/format"
	"github.com/a-godura/zsh-history-viewer/internal/history"
)

// ExportOptions contains the options for the export command.
type ExportOptions struct {
	Format   string
	Out      string
	Title    string
	Limit    int
	HistFile string
	Stdin    bool
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export deduplicated history as YAML, JSON or Markdown",
		Long: `Export the deduplicated history snapshot in the given format.

The snapshot contains the same records the browse command would offer,
newest first, with one entry per distinct command.`,
		Example: `  # Print the snapshot as YAML
  zhv export --format yaml

  # Write a Markdown report into a directory, named from the title
  zhv export --format md --title "Deploy commands" --out ./reports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "yaml", "output format (yaml, json, md)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file or directory (default: stdout)")
	cmd.Flags().StringVar(&opts.Title, "title", "History snapshot", "snapshot title")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of history entries to load")
	cmd.Flags().StringVar(&opts.HistFile, "histfile", "", "history file path (default: auto-detect)")
	cmd.Flags().BoolVar(&opts.Stdin, "stdin", false, "read raw history lines from stdin")

	return cmd
}

func runExport(opts *ExportOptions) error {
	cfg, err := config.LoadWithDefaults(ConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Limit > 0 {
		cfg.History.Limit = opts.Limit
	}
	if opts.HistFile != "" {
		cfg.History.File = opts.HistFile
	}

	var source history.Source
	if opts.Stdin || stdinIsPiped() {
		source = history.NewReaderSource(os.Stdin)
	} else {
		fs := history.NewFileSource(cfg.History.File)
		fs.SkipPrefixes = cfg.History.SkipPrefixes
		source = fs
	}

	rawLines, err := source.Fetch(cfg.History.Limit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	snap := export.NewSnapshot(opts.Title, format.Dedupe(rawLines))

	data, err := snap.Render(export.Format(opts.Format))
	if err != nil {
		return err
	}

	if opts.Out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	outPath := opts.Out
	if info, err := os.Stat(outPath); err == nil && info.IsDir() {
		outPath = filepath.Join(outPath, snap.FileName(export.Format(opts.Format)))
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	fmt.Printf("Exported %d entries to %s\n", len(snap.Entries), outPath)
	return nil
}
