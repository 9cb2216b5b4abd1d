package cli

import (
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/a-godura/zsh-history-viewer/internal/config"
	"github.com/a-godura/zsh-history-viewer/internal/format"
	"github.com/a-godura/zsh-history-viewer/internal/history"
	"github.com/a-godura/zsh-history-viewer/internal/stats"
)

// StatsOptions contains the options for the stats command.
type StatsOptions struct {
	Top      int
	Limit    int
	HistFile string
	Stdin    bool
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show a usage report over deduplicated history",
		Example: `  # Top 20 programs by distinct commands
  zhv stats

  # Top 5 over the last 200 entries
  zhv stats --top 5 --limit 200`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts)
		},
	}

	cmd.Flags().IntVar(&opts.Top, "top", 20, "number of programs to show")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of history entries to load")
	cmd.Flags().StringVar(&opts.HistFile, "histfile", "", "history file path (default: auto-detect)")
	cmd.Flags().BoolVar(&opts.Stdin, "stdin", false, "read raw history lines from stdin")

	return cmd
}

func runStats(opts *StatsOptions) error {
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

	rows := stats.Compute(format.Dedupe(rawLines))
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "No commands found in history")
		return nil
	}

	if opts.Top > 0 && len(rows) > opts.Top {
		rows = rows[:opts.Top]
	}

	tbl := table.New("PROGRAM", "COMMANDS", "LAST USED").WithWriter(os.Stdout)
	for _, row := range rows {
		tbl.AddRow(row.Program, row.Count, row.LastUsed)
	}
	tbl.Print()

	return nil
}
