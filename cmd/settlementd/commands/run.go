package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tee-settlement/domain/interfaces"
	"tee-settlement/infrastructure/config"
)

// NewRunCommand creates the run command
func NewRunCommand(container *config.Container) *cobra.Command {
	var (
		wallet string
		noWait bool
	)

	cmd := &cobra.Command{
		Use:   "run [dataset_url]",
		Short: "Run the settlement pipeline once",
		Long: `Submits a confidential computation over the dataset, waits for the
task to finish and prints the computed payouts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.RunSettlementUseCase == nil {
				return fmt.Errorf("compute configuration required for run command")
			}

			params := interfaces.RunSettlementParams{
				DatasetURL:    args[0],
				WalletAddress: wallet,
				Wait:          !noWait,
			}

			container.Logger.Info("Running settlement pipeline",
				"datasetUrl", params.DatasetURL,
				"wait", params.Wait)

			result, err := container.RunSettlementUseCase.Execute(context.Background(), params)
			if err != nil {
				return fmt.Errorf("pipeline failed: %w", err)
			}

			fmt.Printf("Deal: %s\n", result.DealID)
			fmt.Printf("Task: %s\n", result.TaskID)

			if result.Result != nil {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(result.Result)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&wallet, "wallet", "w", "", "Wallet address to record the job under")
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "Return after order matching without observing the task")

	return cmd
}
