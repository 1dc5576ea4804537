// Package usecases wires the settlement pipeline: order assembly, task
// observation, result retrieval, on-chain settlement and treasury reads.
package usecases

import (
	"context"
	"net/url"

	"tee-settlement/domain/entities"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
)

// runSettlementUseCase implements the submit-observe-fetch pipeline.
type runSettlementUseCase struct {
	assembler interfaces.OrderAssembler
	observer  interfaces.TaskObserver
	fetcher   interfaces.ResultFetcher
	jobs      interfaces.JobRepository
	logger    interfaces.Logger
}

// NewRunSettlementUseCase creates the pipeline use case. jobs may be nil
// when no backing store is configured.
func NewRunSettlementUseCase(
	assembler interfaces.OrderAssembler,
	observer interfaces.TaskObserver,
	fetcher interfaces.ResultFetcher,
	jobs interfaces.JobRepository,
	logger interfaces.Logger,
) interfaces.RunSettlementUseCase {
	return &runSettlementUseCase{
		assembler: assembler,
		observer:  observer,
		fetcher:   fetcher,
		jobs:      jobs,
		logger:    logger,
	}
}

// Execute runs the pipeline. With params.Wait unset it returns as soon as
// the deal is matched; the caller re-polls via the result-fetch path.
func (uc *runSettlementUseCase) Execute(
	ctx context.Context,
	params interfaces.RunSettlementParams,
) (*interfaces.RunSettlementResult, error) {
	if err := validateDatasetURL(params.DatasetURL); err != nil {
		return nil, err
	}

	dealID, taskID, err := uc.assembler.Assemble(ctx, params.DatasetURL)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Settlement job submitted", "dealId", dealID, "taskId", taskID)

	uc.persist(ctx, entities.Job{
		TaskID:        taskID,
		DealID:        dealID,
		WalletAddress: params.WalletAddress,
		Status:        entities.JobStatusSubmitted,
	})

	if !params.Wait {
		return &interfaces.RunSettlementResult{DealID: dealID, TaskID: taskID}, nil
	}

	if err := uc.observer.Wait(ctx, taskID, dealID); err != nil {
		uc.patchFailed(ctx, taskID, err)
		// Timeout surfaces distinctly so callers re-poll the result path
		// instead of resubmitting the job.
		return nil, err
	}

	fetched, err := uc.fetcher.Fetch(ctx, taskID)
	if err != nil {
		uc.patchFailed(ctx, taskID, err)
		return nil, err
	}

	if fetched.Status == entities.TaskStatusCompletedLabel {
		completed := entities.JobStatusCompleted
		uc.patch(ctx, taskID, entities.JobPatch{Status: &completed, Result: fetched.Result})
	}

	return &interfaces.RunSettlementResult{
		DealID: dealID,
		TaskID: taskID,
		Result: fetched.Result,
	}, nil
}

// persist records the job when a ledger is configured. A ledger write
// failure does not abort a pipeline whose deal is already matched.
func (uc *runSettlementUseCase) persist(ctx context.Context, job entities.Job) {
	if uc.jobs == nil {
		return
	}
	if _, err := uc.jobs.Upsert(ctx, job); err != nil {
		uc.logger.Error("Failed to persist job", "taskId", job.TaskID, "error", err)
	}
}

func (uc *runSettlementUseCase) patchFailed(ctx context.Context, taskID string, cause error) {
	failed := entities.JobStatusFailed
	msg := cause.Error()
	uc.patch(ctx, taskID, entities.JobPatch{Status: &failed, Error: &msg})
}

func (uc *runSettlementUseCase) patch(ctx context.Context, taskID string, patch entities.JobPatch) {
	if uc.jobs == nil {
		return
	}
	if _, err := uc.jobs.Patch(ctx, taskID, patch); err != nil {
		uc.logger.Error("Failed to patch job", "taskId", taskID, "error", err)
	}
}

func validateDatasetURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		verr := &errors.ValidationError{}
		verr.AddFieldError("datasetUrl", "must be a publicly fetchable http(s) URL")
		return verr
	}
	return nil
}
