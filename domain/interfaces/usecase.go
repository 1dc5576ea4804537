package interfaces

import (
	"context"

	"tee-settlement/domain/entities"
)

// RunSettlementUseCase drives the submit-observe-fetch pipeline.
type RunSettlementUseCase interface {
	// Execute assembles and matches orders, persists the job, and when
	// params.Wait is set observes the task to completion and stores the
	// fetched result.
	Execute(ctx context.Context, params RunSettlementParams) (*RunSettlementResult, error)
}

// RunSettlementParams are the inputs to a pipeline run.
type RunSettlementParams struct {
	DatasetURL    string
	WalletAddress string
	Wait          bool
}

// RunSettlementResult is the pipeline outcome. Result is only populated on
// a waited, completed run.
type RunSettlementResult struct {
	DealID string
	TaskID string
	Result *entities.TaskResult
}

// FetchResultUseCase polls a task's status and persists its result once.
type FetchResultUseCase interface {
	// Execute returns the mapped status and result for a task, patching
	// the job record when the task has completed.
	Execute(ctx context.Context, taskID string) (*TaskStatusResult, error)
}

// ExecuteSettlementUseCase submits the one-time on-chain settlement.
type ExecuteSettlementUseCase interface {
	Execute(ctx context.Context, params ExecuteSettlementParams) (*ExecuteSettlementResult, error)
}

// ExecuteSettlementParams carry the payout batch and its attestation.
// TaskID is optional; when present the job record is patched as settled.
type ExecuteSettlementParams struct {
	Recipients  []string
	Amounts     []string
	Attestation string
	TaskID      string
}

// ExecuteSettlementResult is the settlement transaction reference.
type ExecuteSettlementResult struct {
	TxHash      string
	ExplorerURL string
}

// TreasuryBalanceUseCase serves the read-through treasury cache.
type TreasuryBalanceUseCase interface {
	// Execute returns the treasury balance, reading the chain when no
	// cached row exists or forceRefresh is set.
	Execute(ctx context.Context, forceRefresh bool) (*TreasuryBalanceResult, error)
}

// TreasuryBalanceResult is the formatted treasury balance and its origin.
type TreasuryBalanceResult struct {
	SettlementAddress string
	BalanceRaw        string
	BalanceFormatted  string
	Source            entities.BalanceSource
}
