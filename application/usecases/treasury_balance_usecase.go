package usecases

import (
	"context"
	goerrors "errors"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"tee-settlement/domain/entities"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
	"tee-settlement/utils"
)

// treasuryBalanceUseCase serves the read-through treasury balance cache.
type treasuryBalanceUseCase struct {
	reader     interfaces.TreasuryReader
	store      interfaces.TreasuryRepository
	settlement common.Address
	decimals   int
	logger     interfaces.Logger
}

// NewTreasuryBalanceUseCase creates the treasury cache use case. reader is
// nil when the settlement side is unconfigured; store is nil when no
// backing store exists, in which case every read goes to the chain.
func NewTreasuryBalanceUseCase(
	reader interfaces.TreasuryReader,
	store interfaces.TreasuryRepository,
	settlementAddress common.Address,
	tokenDecimals int,
	logger interfaces.Logger,
) interfaces.TreasuryBalanceUseCase {
	return &treasuryBalanceUseCase{
		reader:     reader,
		store:      store,
		settlement: settlementAddress,
		decimals:   tokenDecimals,
		logger:     logger,
	}
}

// Execute returns the treasury balance. With a store configured and no
// forced refresh, a cached row wins; otherwise the chain is read and the
// row overwritten best-effort.
func (uc *treasuryBalanceUseCase) Execute(
	ctx context.Context,
	forceRefresh bool,
) (*interfaces.TreasuryBalanceResult, error) {
	if uc.reader == nil {
		return nil, errors.NewDomainError(errors.ErrConfiguration,
			"settlement contract or token address is not configured")
	}

	address := strings.ToLower(uc.settlement.Hex())

	if uc.store != nil && !forceRefresh {
		cached, err := uc.store.Get(ctx, address)
		if err == nil {
			return &interfaces.TreasuryBalanceResult{
				SettlementAddress: address,
				BalanceRaw:        cached.BalanceRaw,
				BalanceFormatted:  cached.BalanceFormatted,
				Source:            entities.BalanceSourceDatabase,
			}, nil
		}
		if !goerrors.Is(err, errors.ErrNotFound) {
			uc.logger.Warn("Treasury cache read failed, falling back to chain", "error", err)
		}
	}

	raw, err := uc.reader.Balance(ctx, uc.settlement)
	if err != nil {
		return nil, err
	}

	balance := entities.TreasuryBalance{
		SettlementAddress: address,
		BalanceRaw:        raw.String(),
		BalanceFormatted:  utils.FormatFixedPoint(raw, uc.decimals),
		UpdatedAt:         time.Now().UTC(),
	}

	// Persistence is best-effort; a cache write failure never fails the read.
	if uc.store != nil {
		if err := uc.store.Put(ctx, balance); err != nil {
			uc.logger.Warn("Failed to persist treasury balance", "error", err)
		}
	}

	return &interfaces.TreasuryBalanceResult{
		SettlementAddress: address,
		BalanceRaw:        balance.BalanceRaw,
		BalanceFormatted:  balance.BalanceFormatted,
		Source:            entities.BalanceSourceChain,
	}, nil
}
