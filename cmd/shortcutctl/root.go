package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/joshuapare/vdfkit/internal/config"
	"github.com/joshuapare/vdfkit/internal/logger"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	cfgPath   string
	steamDirs []string
	logLevel  string

	// cfg is the effective configuration after flags are applied.
	cfg = config.DefaultConfig()

	// logFile is the log destination opened by setup, if any.
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "shortcutctl",
	Short: "Inspect the non-Steam game shortcuts of Steam users",
	Long: `shortcutctl reads the binary shortcuts.vdf files Steam keeps for every
user account and lists the non-Steam games they contain. It can derive the
SteamID of a shortcut, index all shortcuts into a SQLite catalog and watch
the files for changes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&cfgPath, "config", "", "Config file (default $VDFKIT_CONFIG or <user config dir>/vdfkit/config.yaml)")
	rootCmd.PersistentFlags().
		StringArrayVar(&steamDirs, "steam-dir", nil, "Steam installation directory (repeatable, overrides config)")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
}

func execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	// PersistentPostRunE is skipped when a command fails.
	_ = teardown()
	if err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// setup loads the config file, applies flag overrides and initialises logging.
func setup() error {
	if err := teardown(); err != nil {
		return err
	}

	path := cfgPath
	if path == "" {
		path = config.DefaultPath()
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded
	if len(steamDirs) > 0 {
		cfg.SteamDirs = steamDirs
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}

	var out io.Writer = os.Stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	}
	logger.Init(logger.Options{
		Enabled: true,
		Level:   level,
		JSON:    cfg.Log.Format == "json",
		Output:  out,
	})
	logger.Debug("config loaded", "path", path, "steam_dirs", cfg.SteamDirs)
	return nil
}

// teardown points logging back at the discard logger and closes the log
// file opened by setup. Safe to call more than once.
func teardown() error {
	if logFile == nil {
		return nil
	}
	logger.Init(logger.Options{})
	err := logFile.Close()
	logFile = nil
	if err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printYAML outputs data as YAML
func printYAML(v any) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// printStructured writes v in the requested format. It reports false for the
// text format so the caller can render its own table.
func printStructured(format string, v any) (bool, error) {
	if jsonOut {
		format = "json"
	}
	switch format {
	case "json":
		return true, printJSON(v)
	case "yaml":
		return true, printYAML(v)
	case "", "text":
		return false, nil
	default:
		return true, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// existingSteamDirs returns the configured Steam directories that exist and
// fails when there are none.
func existingSteamDirs() ([]string, error) {
	dirs := cfg.ExistingSteamDirs()
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no Steam installation found (looked in %v); use --steam-dir", cfg.SteamDirs)
	}
	return dirs, nil
}
