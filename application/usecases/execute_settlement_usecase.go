package usecases

import (
	"context"
	"time"

	"tee-settlement/domain/entities"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
)

// executeSettlementUseCase submits the one-time on-chain settlement and
// records its transaction on the job.
type executeSettlementUseCase struct {
	executor interfaces.SettlementExecutor
	jobs     interfaces.JobRepository
	treasury interfaces.TreasuryBalanceUseCase
	logger   interfaces.Logger
}

// NewExecuteSettlementUseCase creates the settlement execution use case.
// executor is nil when no executor credentials are configured; jobs and
// treasury may be nil.
func NewExecuteSettlementUseCase(
	executor interfaces.SettlementExecutor,
	jobs interfaces.JobRepository,
	treasury interfaces.TreasuryBalanceUseCase,
	logger interfaces.Logger,
) interfaces.ExecuteSettlementUseCase {
	return &executeSettlementUseCase{
		executor: executor,
		jobs:     jobs,
		treasury: treasury,
		logger:   logger,
	}
}

// Execute validates and submits the payout batch. The contract's replay
// guard surfaces as ErrAlreadySettled; the orchestration layer never calls
// this before a result exists.
func (uc *executeSettlementUseCase) Execute(
	ctx context.Context,
	params interfaces.ExecuteSettlementParams,
) (*interfaces.ExecuteSettlementResult, error) {
	if uc.executor == nil {
		return nil, errors.NewDomainError(errors.ErrConfiguration,
			"settlement executor credentials are not configured")
	}

	receipt, err := uc.executor.Execute(ctx, params.Recipients, params.Amounts, params.Attestation)
	if err != nil {
		return nil, err
	}

	if uc.jobs != nil && params.TaskID != "" {
		settled := entities.JobStatusSettled
		now := time.Now().UTC()
		txHash := receipt.TxHash.Hex()
		_, patchErr := uc.jobs.Patch(ctx, params.TaskID, entities.JobPatch{
			Status:        &settled,
			SettledTxHash: &txHash,
			SettledAt:     &now,
		})
		if patchErr != nil {
			uc.logger.Error("Failed to mark job settled",
				"taskId", params.TaskID, "txHash", txHash, "error", patchErr)
		}
	}

	// The settlement drained the treasury; refresh the cached balance
	// opportunistically. Best-effort only.
	if uc.treasury != nil {
		if _, err := uc.treasury.Execute(ctx, true); err != nil {
			uc.logger.Warn("Treasury refresh after settlement failed", "error", err)
		}
	}

	return &interfaces.ExecuteSettlementResult{
		TxHash:      receipt.TxHash.Hex(),
		ExplorerURL: receipt.ExplorerURL,
	}, nil
}
