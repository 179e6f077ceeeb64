package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vdfkit/internal/catalog"
	"github.com/joshuapare/vdfkit/internal/logger"
	"github.com/joshuapare/vdfkit/internal/watch"
	"github.com/joshuapare/vdfkit/pkg/shortcut"
)

var (
	watchIndex    bool
	watchDebounce time.Duration
)

func init() {
	cmd := newWatchCmd()
	cmd.Flags().BoolVar(&watchIndex, "index", false, "Sync every change into the catalog")
	cmd.Flags().StringVar(&indexDB, "db", "", "Catalog database (overrides config)")
	cmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "Quiet period before a changed file is read (overrides config)")
	rootCmd.AddCommand(cmd)
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Report shortcut changes as Steam writes them",
		Long: `The watch command follows the shortcuts file of every Steam user and
prints the new list of shortcuts each time one changes. With --index every
change is also written to the catalog. Runs until interrupted.

Example:
  shortcutctl watch
  shortcutctl watch --index --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context())
		},
	}
	return cmd
}

// watchReport is printed for every change.
type watchReport struct {
	UserID    string              `json:"user_id"`
	Path      string              `json:"path"`
	Shortcuts []shortcut.Shortcut `json:"shortcuts"`
	Error     string              `json:"error,omitempty"`
}

func runWatch(ctx context.Context) error {
	dirs, err := existingSteamDirs()
	if err != nil {
		return err
	}

	debounce := cfg.Watch.Debounce
	if watchDebounce > 0 {
		debounce = watchDebounce
	}
	w, err := watch.New(dirs, watch.WithDebounce(debounce), watch.WithLogger(logger.L))
	if err != nil {
		return err
	}
	defer w.Close()

	var store *catalog.Store
	if watchIndex {
		store, err = catalog.Open(ctx, catalogPath())
		if err != nil {
			return err
		}
		defer store.Close()
	}

	printVerbose("Watching %d directories\n", len(w.Dirs()))
	return w.Run(ctx, func(ev watch.Event) {
		handleChange(ctx, store, ev)
	})
}

func handleChange(ctx context.Context, store *catalog.Store, ev watch.Event) {
	src := shortcut.Source{UserID: ev.UserID, Path: ev.Path}
	src.Shortcuts, src.Err = shortcut.ParseFile(ev.Path)

	report := watchReport{UserID: ev.UserID, Path: ev.Path, Shortcuts: src.Shortcuts}
	if src.Err != nil {
		report.Error = src.Err.Error()
		logger.Warn("cannot parse changed shortcuts file", "path", ev.Path, "err", src.Err)
	}

	if store != nil {
		if _, err := store.Sync(ctx, []shortcut.Source{src}); err != nil {
			logger.Error("catalog sync failed", "path", ev.Path, "err", err)
		}
	}

	if jsonOut {
		if err := printJSON(report); err != nil {
			logger.Error("write report", "err", err)
		}
		return
	}
	if src.Err != nil {
		printInfo("%s: user %s: %v\n", time.Now().Format(time.TimeOnly), ev.UserID, src.Err)
		return
	}
	printInfo("%s: user %s: %d shortcuts\n", time.Now().Format(time.TimeOnly), ev.UserID, len(src.Shortcuts))
	for _, sc := range src.Shortcuts {
		printInfo("  %d  %s\n", sc.AppID, sc.AppName)
	}
}
