package usecases

import (
	"context"
	goerrors "errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tee-settlement/domain/entities"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
	"tee-settlement/test/mocks"
)

func TestFetchResultUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockResultFetcher(ctrl)
	jobs := mocks.NewMockJobRepository(ctrl)
	logger := newQuietLogger(ctrl)

	useCase := NewFetchResultUseCase(fetcher, jobs, logger)
	ctx := context.Background()

	result := &entities.TaskResult{
		Payouts:     []entities.Payout{},
		Attestation: "0x01",
	}

	t.Run("completed task patches the job", func(t *testing.T) {
		fetcher.EXPECT().
			Fetch(ctx, testTaskID).
			Return(&interfaces.TaskStatusResult{
				Status: entities.TaskStatusCompletedLabel,
				Result: result,
			}, nil)

		jobs.EXPECT().
			Patch(ctx, testTaskID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, patch entities.JobPatch) (*entities.Job, error) {
				require.NotNil(t, patch.Status)
				assert.Equal(t, entities.JobStatusCompleted, *patch.Status)
				assert.Equal(t, result, patch.Result)
				return &entities.Job{}, nil
			})

		got, err := useCase.Execute(ctx, testTaskID)
		require.NoError(t, err)
		assert.Equal(t, entities.TaskStatusCompletedLabel, got.Status)
		assert.Equal(t, result, got.Result)
	})

	t.Run("pending task is not an error", func(t *testing.T) {
		fetcher.EXPECT().
			Fetch(ctx, testTaskID).
			Return(&interfaces.TaskStatusResult{Status: entities.TaskStatusOtherLabel}, nil)

		got, err := useCase.Execute(ctx, testTaskID)
		require.NoError(t, err)
		assert.Equal(t, entities.TaskStatusOtherLabel, got.Status)
		assert.Nil(t, got.Result)
	})

	t.Run("unknown job is tolerated for external tasks", func(t *testing.T) {
		fetcher.EXPECT().
			Fetch(ctx, testTaskID).
			Return(&interfaces.TaskStatusResult{
				Status: entities.TaskStatusCompletedLabel,
				Result: result,
			}, nil)
		jobs.EXPECT().
			Patch(ctx, testTaskID, gomock.Any()).
			Return(nil, errors.NewDomainError(errors.ErrNotFound, "job not found"))

		got, err := useCase.Execute(ctx, testTaskID)
		require.NoError(t, err)
		assert.Equal(t, entities.TaskStatusCompletedLabel, got.Status)
	})

	t.Run("empty task id", func(t *testing.T) {
		got, err := useCase.Execute(ctx, "")
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, goerrors.Is(err, errors.ErrInvalidInput))
	})

	t.Run("fetch failure propagates", func(t *testing.T) {
		netErr := errors.NewDomainError(errors.ErrNetwork, "rpc unavailable")

		fetcher.EXPECT().
			Fetch(ctx, testTaskID).
			Return(nil, netErr)

		got, err := useCase.Execute(ctx, testTaskID)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, goerrors.Is(err, errors.ErrNetwork))
	})
}
