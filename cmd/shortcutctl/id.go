package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vdfkit/pkg/shortcut"
)

func init() {
	rootCmd.AddCommand(newIDCmd())
}

func newIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id <exe> <name>",
		Short: "Print the SteamID Steam derives for a shortcut",
		Long: `The id command computes the 64-bit game ID Steam assigns a non-Steam
shortcut from its Exe and AppName fields, exactly as they are stored
(including any quotes around Exe).

Example:
  shortcutctl id '"/usr/bin/retroarch"' RetroArch`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runID(args)
		},
	}
	return cmd
}

func runID(args []string) error {
	exe, name := args[0], args[1]
	id := shortcut.SteamID(exe, name)

	if jsonOut {
		return printJSON(map[string]any{
			"exe":      exe,
			"app_name": name,
			"steam_id": id,
			"hex":      formatHex(id),
		})
	}
	printInfo("%d\n", id)
	printVerbose("hex: %s\n", formatHex(id))
	return nil
}

func formatHex(id uint64) string {
	return fmt.Sprintf("0x%016x", id)
}
