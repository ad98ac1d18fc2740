// Package main provides the CLI entrypoint for omnote.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/omnote/omnote/internal/app"
	"github.com/omnote/omnote/internal/config"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose     bool
		configPath  string
		systemTheme bool
		noWatch     bool
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "omnote",
	Short: "Terminal-themed note taking for Linux desktops",
	Long: `omnote is a small GTK note-taking application whose colors follow
your terminal emulator's color scheme.

The palette is resolved from the omarchy theme manager, alacritty, kitty
or foot configuration, or OMNOTE_* environment overrides, and reapplied
live when any of those change.

Running omnote without a subcommand launches the GUI.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		// Flags map onto the environment overrides so the resolution
		// chain sees a single source of truth.
		if globalOpts.systemTheme {
			os.Setenv("OMNOTE_THEME_MODE", "system")
			os.Setenv("MICROPAD_THEME_MODE", "system")
		}
		if globalOpts.noWatch {
			os.Setenv("OMNOTE_NO_WATCH", "1")
			os.Setenv("MICROPAD_NO_WATCH", "1")
		}

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureNotesDir(); err != nil {
			return fmt.Errorf("failed to create notes directory: %w", err)
		}
		// GTK gets a bare argv; cobra already consumed our flags.
		if status := app.New(cfg, logger).Run(os.Args[:1]); status != 0 {
			return fmt.Errorf("application exited with status %d", status)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/omnote/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.systemTheme, "system-theme", false,
		"Use the system GTK theme instead of the terminal palette")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.noWatch, "no-watch", false,
		"Do not watch theme sources for changes")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose || config.Debug() {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
