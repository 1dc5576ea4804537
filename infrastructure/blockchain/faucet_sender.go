package blockchain

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
)

// FaucetSender transfers test tokens from the executor account. The send
// is fire-and-forget: the transaction hash is returned as soon as the
// node accepts it, without waiting for mining.
type FaucetSender struct {
	contract *bind.BoundContract
	auth     *bind.TransactOpts
	chainID  int64
	logger   interfaces.Logger
}

// NewFaucetSender binds an ERC-20 token contract for faucet transfers
// signed with the given key.
func NewFaucetSender(
	client *ethclient.Client,
	chainID int64,
	tokenAddress string,
	senderKeyHex string,
	logger interfaces.Logger,
) (*FaucetSender, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(senderKeyHex, "0x"))
	if err != nil {
		return nil, errors.NewDomainError(errors.ErrConfiguration, "invalid faucet sender key")
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(chainID))
	if err != nil {
		return nil, &errors.BlockchainError{Operation: "NewTransactor", ChainID: chainID, Err: err}
	}

	if !common.IsHexAddress(tokenAddress) {
		return nil, errors.NewDomainError(errors.ErrConfiguration, "invalid token address")
	}
	addr := common.HexToAddress(tokenAddress)

	parsed := mustParseABI(erc20ABI)
	return &FaucetSender{
		contract: bind.NewBoundContract(addr, parsed, client, client, client),
		auth:     auth,
		chainID:  chainID,
		logger:   logger,
	}, nil
}

// Send submits an ERC-20 transfer to the wallet.
func (f *FaucetSender) Send(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error) {
	opts := *f.auth
	opts.Context = ctx

	tx, err := f.contract.Transact(&opts, "transfer", to, amount)
	if err != nil {
		return common.Hash{}, &errors.BlockchainError{Operation: "Transfer", ChainID: f.chainID, Err: err}
	}

	f.logger.Debug("Faucet transfer submitted",
		"to", to.Hex(),
		"txHash", tx.Hash().Hex())
	return tx.Hash(), nil
}
