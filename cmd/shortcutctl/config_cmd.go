package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vdfkit/internal/config"
)

var configForce bool

func init() {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit()
		},
	}
	initCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")

	cmd.AddCommand(show, initCmd)
	rootCmd.AddCommand(cmd)
}

func configFilePath() string {
	if cfgPath != "" {
		return cfgPath
	}
	return config.DefaultPath()
}

func runConfigShow() error {
	if jsonOut {
		return printJSON(cfg)
	}
	printVerbose("# %s\n", configFilePath())
	return printYAML(cfg)
}

func runConfigInit() error {
	path := configFilePath()
	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if _, err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	printInfo("Wrote %s\n", path)
	return nil
}
