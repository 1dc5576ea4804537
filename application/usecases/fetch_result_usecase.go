package usecases

import (
	"context"

	goerrors "errors"

	"tee-settlement/domain/entities"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
)

// fetchResultUseCase polls a task's status and persists its result once.
type fetchResultUseCase struct {
	fetcher interfaces.ResultFetcher
	jobs    interfaces.JobRepository
	logger  interfaces.Logger
}

// NewFetchResultUseCase creates the result-fetch use case. jobs may be nil.
func NewFetchResultUseCase(
	fetcher interfaces.ResultFetcher,
	jobs interfaces.JobRepository,
	logger interfaces.Logger,
) interfaces.FetchResultUseCase {
	return &fetchResultUseCase{fetcher: fetcher, jobs: jobs, logger: logger}
}

// Execute returns the mapped task status and result, patching the job
// record when the task has completed. A non-completed status is simply
// "not ready yet", never an error.
func (uc *fetchResultUseCase) Execute(ctx context.Context, taskID string) (*interfaces.TaskStatusResult, error) {
	if taskID == "" {
		verr := &errors.ValidationError{}
		verr.AddFieldError("taskId", "task id is required")
		return nil, verr
	}

	fetched, err := uc.fetcher.Fetch(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if fetched.Status == entities.TaskStatusCompletedLabel && uc.jobs != nil {
		completed := entities.JobStatusCompleted
		_, err := uc.jobs.Patch(ctx, taskID, entities.JobPatch{
			Status: &completed,
			Result: fetched.Result,
		})
		// The task may have been submitted outside this process; an
		// unknown job is not a failure of the fetch.
		if err != nil && !goerrors.Is(err, errors.ErrNotFound) {
			uc.logger.Error("Failed to patch job with result", "taskId", taskID, "error", err)
		}
	}

	return fetched, nil
}
