package blockchain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
)

// treasuryReader reads the settlement token balance held by a contract.
type treasuryReader struct {
	token   *bind.BoundContract
	chainID int64
}

// NewTreasuryReader creates a reader over the settlement token contract.
func NewTreasuryReader(backend bind.ContractBackend, chainID int64, tokenAddress string) (interfaces.TreasuryReader, error) {
	if !common.IsHexAddress(tokenAddress) {
		return nil, errors.NewDomainError(errors.ErrConfiguration, "invalid token address")
	}

	parsed := mustParseABI(erc20ABI)
	return &treasuryReader{
		token:   bind.NewBoundContract(common.HexToAddress(tokenAddress), parsed, backend, nil, nil),
		chainID: chainID,
	}, nil
}

// Balance returns the raw token balance of the settlement address.
func (r *treasuryReader) Balance(ctx context.Context, settlementAddress common.Address) (*big.Int, error) {
	var out []interface{}
	err := r.token.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", settlementAddress)
	if err != nil {
		return nil, &errors.BlockchainError{
			Operation: "Balance.balanceOf",
			ChainID:   r.chainID,
			Err:       err,
		}
	}

	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, &errors.BlockchainError{
			Operation: "Balance.decode",
			ChainID:   r.chainID,
			Err:       errors.ErrNetwork,
		}
	}

	return balance, nil
}
