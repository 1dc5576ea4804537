package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tee-settlement/infrastructure/config"
)

// NewTreasuryCommand creates the treasury command
func NewTreasuryCommand(container *config.Container) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "treasury",
		Short: "Display the settlement treasury balance",
		Long:  "Prints the token balance held by the settlement contract, cached or live.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if container.TreasuryBalanceUseCase == nil {
				return fmt.Errorf("settlement contract and token address required for treasury command")
			}

			result, err := container.TreasuryBalanceUseCase.Execute(context.Background(), refresh)
			if err != nil {
				return fmt.Errorf("failed to read treasury balance: %w", err)
			}

			fmt.Printf("Settlement: %s\n", result.SettlementAddress)
			fmt.Printf("Balance:    %s (%s raw)\n", result.BalanceFormatted, result.BalanceRaw)
			fmt.Printf("Source:     %s\n", result.Source)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&refresh, "refresh", "r", false, "Bypass the cache and read the chain")

	return cmd
}
