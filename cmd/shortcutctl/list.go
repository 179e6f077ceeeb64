package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vdfkit/internal/logger"
	"github.com/joshuapare/vdfkit/pkg/shortcut"
)

var (
	listFormat string
	listIDs    bool
	listUser   string
)

// listedShortcut is one row of list output.
type listedShortcut struct {
	shortcut.Shortcut `yaml:",inline"`

	SteamDir string `json:"steam_dir" yaml:"steam_dir"`
	UserID   string `json:"user_id" yaml:"user_id"`
	SteamID  uint64 `json:"steam_id,omitempty" yaml:"steam_id,omitempty"`
}

func init() {
	cmd := newListCmd()
	cmd.Flags().StringVar(&listFormat, "format", "text", "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&listIDs, "ids", false, "Include the derived SteamID of every shortcut")
	cmd.Flags().StringVar(&listUser, "user", "", "Only list shortcuts of this user ID")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the shortcuts of every Steam user",
		Long: `The list command reads userdata/<user>/config/shortcuts.vdf below every
configured Steam directory and prints the shortcuts found, ordered by Steam
directory, user and position in the file. Files that cannot be parsed are
skipped with a warning.

Example:
  shortcutctl list
  shortcutctl list --ids --steam-dir ~/.local/share/Steam
  shortcutctl list --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context())
		},
	}
	return cmd
}

func runList(ctx context.Context) error {
	dirs, err := existingSteamDirs()
	if err != nil {
		return err
	}

	rows := make([]listedShortcut, 0)
	for _, dir := range dirs {
		printVerbose("Scanning %s\n", dir)
		sources, err := shortcut.Scan(ctx, dir, shortcut.WithLogger(logger.L))
		if err != nil {
			return err
		}
		for _, src := range sources {
			if src.Err != nil || (listUser != "" && src.UserID != listUser) {
				continue
			}
			for _, sc := range src.Shortcuts {
				row := listedShortcut{Shortcut: sc, SteamDir: dir, UserID: src.UserID}
				if listIDs {
					row.SteamID = sc.SteamID()
				}
				rows = append(rows, row)
			}
		}
	}

	if done, err := printStructured(listFormat, rows); done {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if listIDs {
		fmt.Fprintln(tw, "USER\tAPPID\tSTEAMID\tNAME\tEXE\tSTART DIR")
	} else {
		fmt.Fprintln(tw, "USER\tAPPID\tNAME\tEXE\tSTART DIR")
	}
	for _, r := range rows {
		if listIDs {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\n", r.UserID, r.AppID, r.SteamID, r.AppName, r.Exe, r.StartDir)
		} else {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", r.UserID, r.AppID, r.AppName, r.Exe, r.StartDir)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printInfo("\nTotal: %d shortcuts\n", len(rows))
	return nil
}
