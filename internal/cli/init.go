package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/a-godura/zsh-history-viewer/internal/config"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	Selector   string
	ExecuteKey string
	Fallback   string
	Shell      string
	Limit      int
	Force      bool
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write a starter zhv configuration file.

The file is written to the XDG config location
($XDG_CONFIG_HOME/zhv/config.toml, or ~/.config/zhv/config.toml) unless
--config points elsewhere. Flags override individual defaults; an
existing file is only replaced with --force.`,
		Example: `  # Write the default config
  zhv init

  # Use skim and a different execute key
  zhv init --selector sk --execute-key ctrl-e`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Selector, "selector", "", "selector command (default: fzf)")
	cmd.Flags().StringVar(&opts.ExecuteKey, "execute-key", "", "alternate key that executes instead of edits")
	cmd.Flags().StringVar(&opts.Fallback, "fallback", "", "behavior when the selector is missing: none or builtin")
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "shell for executing commands (zsh, bash, sh)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of history entries to load")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(opts *InitOptions) error {
	path := ConfigPath()
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if path == "" {
		return fmt.Errorf("could not determine config path; pass --config")
	}

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	applyInitOverrides(cfg, opts)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if err := config.Write(path, cfg); err != nil {
		return err
	}

	fmt.Printf("Wrote config to %s\n", path)
	fmt.Printf("  selector: %s (fallback: %s)\n", cfg.Selector.Command, cfg.Selector.Fallback)
	fmt.Printf("  execute key: %s\n", cfg.Selector.ExecuteKey)
	fmt.Println("\nTry 'zhv browse' to verify.")

	return nil
}

// applyInitOverrides applies command-line flags on top of the defaults.
func applyInitOverrides(cfg *config.Config, opts *InitOptions) {
	if opts.Selector != "" {
		cfg.Selector.Command = opts.Selector
	}
	if opts.ExecuteKey != "" {
		cfg.Selector.ExecuteKey = opts.ExecuteKey
	}
	if opts.Fallback != "" {
		cfg.Selector.Fallback = opts.Fallback
	}
	if opts.Shell != "" {
		cfg.Exec.Shell = opts.Shell
	}
	if opts.Limit > 0 {
		cfg.History.Limit = opts.Limit
	}
}
