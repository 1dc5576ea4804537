package usecases

import (
	"context"
	goerrors "errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tee-settlement/domain/entities"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
	"tee-settlement/test/mocks"
)

func TestExecuteSettlementUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := mocks.NewMockSettlementExecutor(ctrl)
	jobs := mocks.NewMockJobRepository(ctrl)
	treasury := mocks.NewMockTreasuryBalanceUseCase(ctrl)
	logger := newQuietLogger(ctrl)

	useCase := NewExecuteSettlementUseCase(executor, jobs, treasury, logger)
	ctx := context.Background()

	recipients := []string{"0x1111111111111111111111111111111111111111"}
	amounts := []string{"10.5"}
	attestation := "0x01"
	txHash := common.HexToHash("0xfeed000000000000000000000000000000000000000000000000000000000001")

	t.Run("settles, marks the job and refreshes the treasury", func(t *testing.T) {
		executor.EXPECT().
			Execute(ctx, recipients, amounts, attestation).
			Return(&interfaces.SettlementReceipt{
				TxHash:      txHash,
				ExplorerURL: "https://scan.example.com/tx/" + txHash.Hex(),
			}, nil)

		jobs.EXPECT().
			Patch(ctx, testTaskID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, patch entities.JobPatch) (*entities.Job, error) {
				require.NotNil(t, patch.Status)
				assert.Equal(t, entities.JobStatusSettled, *patch.Status)
				require.NotNil(t, patch.SettledTxHash)
				assert.Equal(t, txHash.Hex(), *patch.SettledTxHash)
				require.NotNil(t, patch.SettledAt)
				return &entities.Job{}, nil
			})

		// Cache refresh bypasses the cache after a settlement.
		treasury.EXPECT().
			Execute(ctx, true).
			Return(&interfaces.TreasuryBalanceResult{}, nil)

		got, err := useCase.Execute(ctx, interfaces.ExecuteSettlementParams{
			Recipients:  recipients,
			Amounts:     amounts,
			Attestation: attestation,
			TaskID:      testTaskID,
		})
		require.NoError(t, err)
		assert.Equal(t, txHash.Hex(), got.TxHash)
		assert.Contains(t, got.ExplorerURL, txHash.Hex())
	})

	t.Run("replay guard surfaces distinctly", func(t *testing.T) {
		alreadySettled := errors.NewDomainError(errors.ErrAlreadySettled, "attestation was already settled")

		executor.EXPECT().
			Execute(ctx, recipients, amounts, attestation).
			Return(nil, alreadySettled)

		got, err := useCase.Execute(ctx, interfaces.ExecuteSettlementParams{
			Recipients:  recipients,
			Amounts:     amounts,
			Attestation: attestation,
		})
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, goerrors.Is(err, errors.ErrAlreadySettled))
	})

	t.Run("insufficient treasury surfaces distinctly", func(t *testing.T) {
		insufficient := errors.NewDomainError(errors.ErrInsufficientTreasury, "fund the treasury first")

		executor.EXPECT().
			Execute(ctx, recipients, amounts, attestation).
			Return(nil, insufficient)

		_, err := useCase.Execute(ctx, interfaces.ExecuteSettlementParams{
			Recipients:  recipients,
			Amounts:     amounts,
			Attestation: attestation,
		})
		require.Error(t, err)
		assert.True(t, goerrors.Is(err, errors.ErrInsufficientTreasury))
		assert.False(t, goerrors.Is(err, errors.ErrExecution))
	})

	t.Run("job patch failure is non-fatal", func(t *testing.T) {
		executor.EXPECT().
			Execute(ctx, recipients, amounts, attestation).
			Return(&interfaces.SettlementReceipt{TxHash: txHash}, nil)
		jobs.EXPECT().
			Patch(ctx, testTaskID, gomock.Any()).
			Return(nil, assert.AnError)
		treasury.EXPECT().
			Execute(ctx, true).
			Return(nil, assert.AnError)

		got, err := useCase.Execute(ctx, interfaces.ExecuteSettlementParams{
			Recipients:  recipients,
			Amounts:     amounts,
			Attestation: attestation,
			TaskID:      testTaskID,
		})
		require.NoError(t, err)
		assert.Equal(t, txHash.Hex(), got.TxHash)
	})

	t.Run("no task id skips the ledger", func(t *testing.T) {
		executor.EXPECT().
			Execute(ctx, recipients, amounts, attestation).
			Return(&interfaces.SettlementReceipt{TxHash: txHash}, nil)
		treasury.EXPECT().
			Execute(ctx, true).
			Return(&interfaces.TreasuryBalanceResult{}, nil)

		_, err := useCase.Execute(ctx, interfaces.ExecuteSettlementParams{
			Recipients:  recipients,
			Amounts:     amounts,
			Attestation: attestation,
		})
		require.NoError(t, err)
	})
}

func TestExecuteSettlementUseCase_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase := NewExecuteSettlementUseCase(nil, nil, nil, newQuietLogger(ctrl))

	got, err := useCase.Execute(context.Background(), interfaces.ExecuteSettlementParams{
		Recipients:  []string{"0x1111111111111111111111111111111111111111"},
		Amounts:     []string{"1"},
		Attestation: "0x01",
	})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, goerrors.Is(err, errors.ErrConfiguration))
}
