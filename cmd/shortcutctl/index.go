package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vdfkit/internal/catalog"
	"github.com/joshuapare/vdfkit/internal/logger"
	"github.com/joshuapare/vdfkit/pkg/shortcut"
)

var indexDB string

func init() {
	cmd := newIndexCmd()
	cmd.Flags().StringVar(&indexDB, "db", "", "Catalog database (overrides config)")
	rootCmd.AddCommand(cmd)
}

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Store the shortcuts of every Steam user in the catalog",
		Long: `The index command scans every configured Steam directory and writes the
shortcuts found into the SQLite catalog. Each shortcuts file replaces its
previous rows; a file that fails to parse keeps them. Rows of files that no
longer exist below the scanned Steam directories are removed.

Example:
  shortcutctl index
  shortcutctl index --db ./shortcuts.db --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd.Context())
		},
	}
	return cmd
}

func catalogPath() string {
	if indexDB != "" {
		return indexDB
	}
	return cfg.Catalog
}

func runIndex(ctx context.Context) error {
	dirs, err := existingSteamDirs()
	if err != nil {
		return err
	}

	var sources []shortcut.Source
	for _, dir := range dirs {
		printVerbose("Scanning %s\n", dir)
		found, err := shortcut.Scan(ctx, dir, shortcut.WithLogger(logger.L))
		if err != nil {
			return err
		}
		sources = append(sources, found...)
	}

	path := catalogPath()
	store, err := catalog.Open(ctx, path)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Reconcile(ctx, sources)
	if err != nil {
		return err
	}
	logger.Info("catalog synced", "db", path, "files", stats.Sources, "skipped", stats.Skipped, "shortcuts", stats.Shortcuts, "pruned", stats.Pruned)

	if jsonOut {
		return printJSON(map[string]any{
			"db":        path,
			"files":     stats.Sources,
			"skipped":   stats.Skipped,
			"shortcuts": stats.Shortcuts,
			"pruned":    stats.Pruned,
		})
	}
	printInfo("Indexed %d shortcuts from %d files into %s\n", stats.Shortcuts, stats.Sources, path)
	if stats.Skipped > 0 {
		printInfo("Skipped %d unreadable files\n", stats.Skipped)
	}
	if stats.Pruned > 0 {
		printInfo("Removed %d shortcuts of files that no longer exist\n", stats.Pruned)
	}
	return nil
}
