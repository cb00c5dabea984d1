package main

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "studio-booking",
		Short:         "Studio appointment booking service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the TOML config file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))
	root.AddCommand(newSlotsCmd(&configPath))
	root.AddCommand(newCancelCmd(&configPath))
	root.AddCommand(newBookCmd(&configPath))

	return root
}
