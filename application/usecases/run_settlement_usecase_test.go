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

const (
	testDatasetURL = "https://data.example.com/sales-report.json"
	testDealID     = "0xdddd000000000000000000000000000000000000000000000000000000000001"
	testTaskID     = "0xcccc000000000000000000000000000000000000000000000000000000000002"
)

func newQuietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	return logger
}

func TestRunSettlementUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assembler := mocks.NewMockOrderAssembler(ctrl)
	observer := mocks.NewMockTaskObserver(ctrl)
	fetcher := mocks.NewMockResultFetcher(ctrl)
	jobs := mocks.NewMockJobRepository(ctrl)
	logger := newQuietLogger(ctrl)

	useCase := NewRunSettlementUseCase(assembler, observer, fetcher, jobs, logger)
	ctx := context.Background()

	result := &entities.TaskResult{
		Payouts:     []entities.Payout{{Recipient: "0x1111111111111111111111111111111111111111", Amount: "10.5"}},
		Attestation: "0x01",
	}

	t.Run("waited run completes and stores the result", func(t *testing.T) {
		assembler.EXPECT().
			Assemble(ctx, testDatasetURL).
			Return(testDealID, testTaskID, nil)

		jobs.EXPECT().
			Upsert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, job entities.Job) (*entities.Job, error) {
				assert.Equal(t, testTaskID, job.TaskID)
				assert.Equal(t, testDealID, job.DealID)
				assert.Equal(t, entities.JobStatusSubmitted, job.Status)
				return &job, nil
			})

		observer.EXPECT().Wait(ctx, testTaskID, testDealID).Return(nil)

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
				return &entities.Job{TaskID: testTaskID}, nil
			})

		got, err := useCase.Execute(ctx, interfaces.RunSettlementParams{
			DatasetURL:    testDatasetURL,
			WalletAddress: "0x2222222222222222222222222222222222222222",
			Wait:          true,
		})
		require.NoError(t, err)
		assert.Equal(t, testDealID, got.DealID)
		assert.Equal(t, testTaskID, got.TaskID)
		assert.Equal(t, result, got.Result)
	})

	t.Run("without wait returns after matching", func(t *testing.T) {
		assembler.EXPECT().
			Assemble(ctx, testDatasetURL).
			Return(testDealID, testTaskID, nil)
		jobs.EXPECT().Upsert(ctx, gomock.Any()).Return(&entities.Job{}, nil)

		got, err := useCase.Execute(ctx, interfaces.RunSettlementParams{
			DatasetURL: testDatasetURL,
		})
		require.NoError(t, err)
		assert.Equal(t, testTaskID, got.TaskID)
		assert.Nil(t, got.Result)
	})

	t.Run("invalid dataset URL", func(t *testing.T) {
		for _, in := range []string{"", "not a url", "ftp://example.com/file", "/relative/path"} {
			got, err := useCase.Execute(ctx, interfaces.RunSettlementParams{DatasetURL: in})
			require.Error(t, err, "input %q", in)
			assert.Nil(t, got)
			assert.True(t, goerrors.Is(err, errors.ErrInvalidInput))
		}
	})

	t.Run("observation timeout marks the job failed", func(t *testing.T) {
		timeout := errors.NewDomainError(errors.ErrTimeout, "observation limit reached")

		assembler.EXPECT().
			Assemble(ctx, testDatasetURL).
			Return(testDealID, testTaskID, nil)
		jobs.EXPECT().Upsert(ctx, gomock.Any()).Return(&entities.Job{}, nil)
		observer.EXPECT().Wait(ctx, testTaskID, testDealID).Return(timeout)

		jobs.EXPECT().
			Patch(ctx, testTaskID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, patch entities.JobPatch) (*entities.Job, error) {
				require.NotNil(t, patch.Status)
				assert.Equal(t, entities.JobStatusFailed, *patch.Status)
				require.NotNil(t, patch.Error)
				return &entities.Job{}, nil
			})

		got, err := useCase.Execute(ctx, interfaces.RunSettlementParams{
			DatasetURL: testDatasetURL,
			Wait:       true,
		})
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, goerrors.Is(err, errors.ErrTimeout))
	})

	t.Run("assembly failure propagates without persistence", func(t *testing.T) {
		noCapacity := errors.NewDomainError(errors.ErrNoCapacity, "no workerpool orders")

		assembler.EXPECT().
			Assemble(ctx, testDatasetURL).
			Return("", "", noCapacity)

		got, err := useCase.Execute(ctx, interfaces.RunSettlementParams{DatasetURL: testDatasetURL})
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, goerrors.Is(err, errors.ErrNoCapacity))
	})

	t.Run("ledger write failure does not abort the pipeline", func(t *testing.T) {
		assembler.EXPECT().
			Assemble(ctx, testDatasetURL).
			Return(testDealID, testTaskID, nil)
		jobs.EXPECT().Upsert(ctx, gomock.Any()).Return(nil, assert.AnError)

		got, err := useCase.Execute(ctx, interfaces.RunSettlementParams{DatasetURL: testDatasetURL})
		require.NoError(t, err)
		assert.Equal(t, testTaskID, got.TaskID)
	})
}

func TestRunSettlementUseCase_NoLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assembler := mocks.NewMockOrderAssembler(ctrl)
	observer := mocks.NewMockTaskObserver(ctrl)
	fetcher := mocks.NewMockResultFetcher(ctrl)
	logger := newQuietLogger(ctrl)

	useCase := NewRunSettlementUseCase(assembler, observer, fetcher, nil, logger)
	ctx := context.Background()

	assembler.EXPECT().Assemble(ctx, testDatasetURL).Return(testDealID, testTaskID, nil)

	got, err := useCase.Execute(ctx, interfaces.RunSettlementParams{DatasetURL: testDatasetURL})
	require.NoError(t, err)
	assert.Equal(t, testDealID, got.DealID)
}
