package main

import (
	"os"

	"github.com/spf13/cobra"

	"tee-settlement/cmd/settlementd/commands"
	"tee-settlement/infrastructure/config"
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "settlementd",
		Short: "Confidential settlement service",
		Long: `Runs confidential payout computations on a TEE compute network and
settles the resulting payouts on chain. Serves an HTTP API and a few
one-shot commands for operating the pipeline by hand.`,
	}

	// Global flags
	var configPath string
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		rootCmd.PrintErrf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Create dependency container
	container, err := config.NewContainer(cfg)
	if err != nil {
		rootCmd.PrintErrf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer container.Close()

	// Add commands
	rootCmd.AddCommand(
		commands.NewServeCommand(container),
		commands.NewRunCommand(container),
		commands.NewTreasuryCommand(container),
		commands.NewVersionCommand(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
