package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/a-godura/zsh-history-viewer/internal/bridge"
	"github.com/a-godura/zsh-history-viewer/internal/config"
	"github.com/a-godura/zsh-history-viewer/internal/dispatch"
	"github.com/a-godura/zsh-history-viewer/internal/errors"
	"github.com/a-godura/zsh-history-viewer/internal/format"
	"github.com/a-godura/zsh-history-viewer/internal/history"
	"github.com/a-godura/zsh-history-viewer/internal/selector"
)

// BrowseOptions contains the options for the browse command.
type BrowseOptions struct {
	Query      string
	Limit      int
	HistFile   string
	Selector   string
	ExecuteKey string
	Run        bool
	Stdin      bool
}

// NewBrowseCommand creates the browse command.
func NewBrowseCommand() *cobra.Command {
	opts := &BrowseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse shell history through the fuzzy selector",
		Long: `Browse recent shell history through the interactive fuzzy selector.

Loads the last N history entries newest-first, deduplicates them, and hands
the candidate list to the selector. The confirmed selection is written to
stdout for the zle widget wrapper: exit code 0 means place the text in the
edit buffer, exit code 3 means accept the line immediately. Empty output
means no action.

When invoked from the widget, pipe the host's numbered history in:

  fc -lt '%m/%d/%Y' -1000 | zhv browse --stdin --query "$BUFFER"`,
		Example: `  # Browse the zsh history file directly
  zhv browse

  # Pre-populate the filter from the current buffer
  zhv browse --query "git re"

  # Run the selected command instead of printing it
  zhv browse --run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "initial filter query")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of history entries to load")
	cmd.Flags().StringVar(&opts.HistFile, "histfile", "", "history file path (default: auto-detect)")
	cmd.Flags().StringVar(&opts.Selector, "selector", "", "selector command (default: from config)")
	cmd.Flags().StringVar(&opts.ExecuteKey, "execute-key", "", "alternate key that executes instead of edits")
	cmd.Flags().BoolVar(&opts.Run, "run", false, "execute outcomes run the command directly")
	cmd.Flags().BoolVar(&opts.Stdin, "stdin", false, "read raw history lines from stdin")

	return cmd
}

func runBrowse(opts *BrowseOptions) error {
	ctx := context.Background()
	log := Logger()

	cfg, err := config.LoadWithDefaults(ConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBrowseOverrides(cfg, opts)

	// Fetch raw history, newest first.
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
	log.Debug("history loaded", "lines", len(rawLines))

	candidates := format.Format(rawLines)
	if len(candidates) <= 1 {
		// Header only: nothing to select, nothing to do.
		log.Debug("no history candidates")
		return nil
	}

	selOpts := selector.Options{
		Query:      opts.Query,
		ExecuteKey: cfg.Selector.ExecuteKey,
		Prompt:     cfg.Selector.Prompt,
		Header:     cfg.Selector.Header,
	}

	rawOutput, err := pickWithFallback(ctx, cfg, candidates, selOpts)
	if err != nil {
		if errors.IsSelectorNotFound(err) {
			// Fail closed: diagnostic, no buffer mutation.
			fmt.Fprintf(os.Stderr, "zhv: %v\n", err)
			fmt.Fprintf(os.Stderr, "zhv: install %q or set selector.fallback = \"builtin\"\n", cfg.Selector.Command)
			os.Exit(bridge.ExitFailure)
		}
		return err
	}

	outcome := dispatch.Dispatch(rawOutput, cfg.Selector.ExecuteKey)
	log.Debug("dispatched", "action", int(outcome.Action))
	if outcome.Action == dispatch.ActionNone {
		return nil
	}

	if opts.Run {
		b := bridge.NewExec(ctx, os.Stdout, cfg.Exec.Shell)
		b.ConfirmDangerous = cfg.Exec.ConfirmDangerous
		return applyOutcome(b, outcome)
	}

	b := bridge.NewShell(os.Stdout)
	if err := applyOutcome(b, outcome); err != nil {
		return err
	}
	if code := b.ExitCode(); code != 0 {
		os.Exit(code)
	}
	return nil
}

// applyBrowseOverrides applies command-line flags on top of the loaded config.
func applyBrowseOverrides(cfg *config.Config, opts *BrowseOptions) {
	if opts.Limit > 0 {
		cfg.History.Limit = opts.Limit
	}
	if opts.HistFile != "" {
		cfg.History.File = opts.HistFile
	}
	if opts.Selector != "" {
		cfg.Selector.Command = opts.Selector
	}
	if opts.ExecuteKey != "" {
		cfg.Selector.ExecuteKey = opts.ExecuteKey
	}
}

// pickWithFallback invokes the external selector, falling back to the
// builtin picker only when that is explicitly configured.
func pickWithFallback(ctx context.Context, cfg *config.Config, candidates []string, opts selector.Options) (string, error) {
	var sel selector.Selector = selector.NewFzf(cfg.Selector.Command, cfg.Selector.Args)

	out, err := sel.Pick(ctx, candidates, opts)
	if err != nil && errors.IsSelectorNotFound(err) && cfg.Selector.Fallback == "builtin" {
		Logger().Debug("external selector missing, using builtin picker", "command", cfg.Selector.Command)
		return selector.NewBuiltin().Pick(ctx, candidates, opts)
	}
	return out, err
}

// applyOutcome routes the outcome to the bridge.
func applyOutcome(b bridge.Bridge, outcome dispatch.Outcome) error {
	switch outcome.Action {
	case dispatch.ActionEdit:
		return b.PlaceInEditBuffer(outcome.Command)
	case dispatch.ActionExecute:
		return b.ExecuteImmediately(outcome.Command)
	default:
		return nil
	}
}

// stdinIsPiped reports whether stdin is connected to a pipe or file rather
// than a terminal.
func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) == 0
}
