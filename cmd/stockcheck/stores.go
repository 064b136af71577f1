package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vsinha/stockcheck/pkg/interfaces/cli/commands"
)

func newStoresCmd() *cobra.Command {
	var storesFile string

	cmd := &cobra.Command{
		Use:   "stores [country]",
		Short: "List directory stores for a country code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			country := commands.DefaultCountry
			if len(args) == 1 {
				country = args[0]
			}
			_, err := commands.NewStoresCommand(storesFile, country, os.Stdout).Execute()
			return err
		},
	}

	cmd.Flags().StringVar(&storesFile, "stores-file", "stores.json", "Store directory JSON file")
	return cmd
}
