package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/vdfkit/pkg/shortcut"
)

var (
	parseFormat string
	parseArgv   bool
)

// parsedShortcut is one entry of parse output.
type parsedShortcut struct {
	shortcut.Shortcut `yaml:",inline"`

	SteamID    uint64   `json:"steam_id" yaml:"steam_id"`
	Argv       []string `json:"argv,omitempty" yaml:"argv,omitempty"`
	WorkingDir string   `json:"working_dir,omitempty" yaml:"working_dir,omitempty"`
}

func init() {
	cmd := newParseCmd()
	cmd.Flags().StringVar(&parseFormat, "format", "text", "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&parseArgv, "argv", false, "Split Exe into program and arguments and unquote StartDir")
	rootCmd.AddCommand(cmd)
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <shortcuts.vdf>",
		Short: "Parse a single shortcuts file",
		Long: `The parse command decodes one shortcuts.vdf file and prints its entries.
A malformed file is an error: no entries are printed.

Example:
  shortcutctl parse ~/.local/share/Steam/userdata/12345/config/shortcuts.vdf
  shortcutctl parse shortcuts.vdf --argv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args)
		},
	}
	return cmd
}

func runParse(args []string) error {
	path := args[0]
	printVerbose("Parsing %s\n", path)

	shortcuts, err := shortcut.ParseFile(path)
	if err != nil {
		return err
	}

	rows := make([]parsedShortcut, 0, len(shortcuts))
	for _, sc := range shortcuts {
		row := parsedShortcut{Shortcut: sc, SteamID: sc.SteamID()}
		if parseArgv {
			argv, err := sc.Command()
			if err != nil {
				return err
			}
			row.Argv = argv
			row.WorkingDir = sc.WorkingDir()
		}
		rows = append(rows, row)
	}

	if done, err := printStructured(parseFormat, rows); done {
		return err
	}

	for i, r := range rows {
		printInfo("[%d] %s\n", i, r.AppName)
		printInfo("  appid:     %d\n", r.AppID)
		printInfo("  steamid:   %d\n", r.SteamID)
		printInfo("  exe:       %s\n", r.Exe)
		printInfo("  start dir: %s\n", r.StartDir)
		if parseArgv {
			printInfo("  argv:      %q\n", r.Argv)
			printInfo("  workdir:   %s\n", r.WorkingDir)
		}
	}
	printInfo("\nTotal: %d shortcuts\n", len(rows))
	return nil
}
