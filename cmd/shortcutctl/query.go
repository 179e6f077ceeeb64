package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vdfkit/internal/catalog"
)

var (
	queryFormat  string
	queryUser    string
	querySteamID string
)

func init() {
	cmd := newQueryCmd()
	cmd.Flags().StringVar(&indexDB, "db", "", "Catalog database (overrides config)")
	cmd.Flags().StringVar(&queryFormat, "format", "text", "Output format: text, json or yaml")
	cmd.Flags().StringVar(&queryUser, "user", "", "Only show shortcuts of this user ID")
	cmd.Flags().StringVar(&querySteamID, "steam-id", "", "Only show shortcuts with this SteamID (decimal or 0x hex)")
	rootCmd.AddCommand(cmd)
}

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Show shortcuts stored in the catalog",
		Long: `The query command reads the SQLite catalog written by index without
touching the Steam directories.

Example:
  shortcutctl query
  shortcutctl query --user 12345 --format yaml
  shortcutctl query --steam-id 0xe89614fe02000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context())
		},
	}
	return cmd
}

func runQuery(ctx context.Context) error {
	store, err := catalog.Open(ctx, catalogPath())
	if err != nil {
		return err
	}
	defer store.Close()

	var entries []catalog.Entry
	switch {
	case querySteamID != "":
		id, err := strconv.ParseUint(querySteamID, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid --steam-id %q: %w", querySteamID, err)
		}
		entries, err = store.FindBySteamID(ctx, id)
		if err != nil {
			return err
		}
		if queryUser != "" {
			entries = filterUser(entries, queryUser)
		}
	case queryUser != "":
		entries, err = store.ListUser(ctx, queryUser)
	default:
		entries, err = store.List(ctx)
	}
	if err != nil {
		return err
	}

	if done, err := printStructured(queryFormat, entries); done {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USER\tAPPID\tSTEAMID\tNAME\tEXE\tINDEXED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\n",
			e.UserID, e.AppID, e.SteamID, e.AppName, e.Exe, e.IndexedAt.Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printInfo("\nTotal: %d shortcuts\n", len(entries))
	return nil
}

func filterUser(entries []catalog.Entry, user string) []catalog.Entry {
	out := entries[:0]
	for _, e := range entries {
		if e.UserID == user {
			out = append(out, e)
		}
	}
	return out
}
