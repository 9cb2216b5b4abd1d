// Package cli provides global state and utilities for CLI commands.
package cli

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"
)

var (
	// configPath is the config file path override from --config.
	configPath string

	// debug enables debug logging. Set by the global --debug flag or
	// ZHV_DEBUG.
	debug bool

	loggerOnce sync.Once
	logger     *slog.Logger
)

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file path (default: ~/.config/zhv/config.toml)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", os.Getenv("ZHV_DEBUG") != "",
		"enable debug logging on stderr")
}

// ConfigPath returns the config file path override, or empty for auto-detect.
func ConfigPath() string {
	return configPath
}

// Logger returns the process-wide logger. Debug messages go to stderr only
// when --debug is set; otherwise they are discarded so widget invocations
// stay quiet.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		var w io.Writer = io.Discard
		level := slog.LevelInfo
		if debug {
			w = os.Stderr
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	})
	return logger
}
