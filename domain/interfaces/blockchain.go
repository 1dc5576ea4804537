package interfaces

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// BlockchainClient wraps the chain RPC connection shared across components.
type BlockchainClient interface {
	// GetBlockNumber returns the current block number.
	GetBlockNumber(ctx context.Context) (uint64, error)

	// CodeAt returns the contract bytecode deployed at an address.
	CodeAt(ctx context.Context, address common.Address) ([]byte, error)

	// Close releases the underlying RPC connection.
	Close() error
}

// SettlementExecutor submits the on-chain batch settlement transaction.
type SettlementExecutor interface {
	// Execute validates inputs, submits batchSettle and waits for mining.
	// Known contract rejections are decoded into distinct error kinds:
	// ErrAlreadySettled, ErrInsufficientTreasury, ErrUnauthorizedExecutor.
	Execute(ctx context.Context, recipients []string, amounts []string, attestation string) (*SettlementReceipt, error)

	// SettlementAddress returns the configured settlement contract address.
	SettlementAddress() common.Address
}

// SettlementReceipt is the outcome of a settlement execution.
type SettlementReceipt struct {
	TxHash      common.Hash
	ExplorerURL string
}

// TreasuryReader reads the live token balance held by a settlement contract.
type TreasuryReader interface {
	// Balance returns the raw fixed-point token balance of the address.
	Balance(ctx context.Context, settlementAddress common.Address) (*big.Int, error)
}
