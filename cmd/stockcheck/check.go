package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vsinha/stockcheck/pkg/application/services/stock"
	"github.com/vsinha/stockcheck/pkg/interfaces/cli/commands"
)

func newCheckCmd() *cobra.Command {
	var cfg commands.Config

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check stock for a shopping list and write per-store reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := commands.NewCheckCommand(cfg, logger, os.Stdout).Execute(cmd.Context())
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.ConfigFile, "config", "c", "config.json", "Preferred store config (JSON or YAML)")
	flags.StringVar(&cfg.StoresFile, "stores-file", "stores.json", "Store directory JSON file")
	flags.StringVarP(&cfg.InputFile, "input", "i", "in.csv", "Shopping list CSV file")
	flags.StringVarP(&cfg.OutputDir, "output-dir", "o", ".", "Directory for store reports")
	flags.StringVarP(&cfg.Format, "format", "f", "csv", "Output format: csv, json, text")
	flags.BoolVar(&cfg.StrictStores, "strict-stores", false, "Fail when a configured store is not in the directory")
	flags.BoolVar(&cfg.LegacyConfidence, "legacy-confidence", false, "Roll up confidence as HIGH or LOW only")
	flags.BoolVar(&cfg.SkipFailed, "skip-failed", false, "Skip articles whose lookup fails instead of aborting")
	flags.IntVar(&cfg.MaxPartDepth, "max-part-depth", stock.DefaultMaxPartDepth, "Maximum multi-part nesting depth")
	flags.DurationVar(&cfg.Timeout, "timeout", 0, "Upstream request timeout (overrides config)")

	return cmd
}
