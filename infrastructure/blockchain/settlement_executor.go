package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
	"tee-settlement/utils"
)

// settlementExecutor implements the SettlementExecutor interface. It is the
// only component that signs with the executor key; the replay guard itself
// lives in the contract, this side only decodes its rejections.
type settlementExecutor struct {
	client      *ethclient.Client
	contract    *bind.BoundContract
	address     common.Address
	auth        *bind.TransactOpts
	explorerURL string
	decimals    int
	chainID     int64
	logger      interfaces.Logger
}

// NewSettlementExecutor creates a settlement executor bound to the contract
// address, signing with the executor key.
func NewSettlementExecutor(
	client *ethclient.Client,
	chainID int64,
	contractAddress string,
	executorKeyHex string,
	explorerURL string,
	tokenDecimals int,
	logger interfaces.Logger,
) (interfaces.SettlementExecutor, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(executorKeyHex, "0x"))
	if err != nil {
		return nil, errors.NewDomainError(errors.ErrConfiguration, "invalid executor key")
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(chainID))
	if err != nil {
		return nil, &errors.BlockchainError{Operation: "NewTransactor", ChainID: chainID, Err: err}
	}

	if !common.IsHexAddress(contractAddress) {
		return nil, errors.NewDomainError(errors.ErrConfiguration, "invalid settlement contract address")
	}
	addr := common.HexToAddress(contractAddress)

	parsed := mustParseABI(settlementABI)
	return &settlementExecutor{
		client:      client,
		contract:    bind.NewBoundContract(addr, parsed, client, client, client),
		address:     addr,
		auth:        auth,
		explorerURL: strings.TrimRight(explorerURL, "/"),
		decimals:    tokenDecimals,
		chainID:     chainID,
		logger:      logger,
	}, nil
}

// SettlementAddress returns the bound contract address.
func (e *settlementExecutor) SettlementAddress() common.Address {
	return e.address
}

// Execute validates the batch, submits batchSettle and waits for mining.
func (e *settlementExecutor) Execute(
	ctx context.Context,
	recipients []string,
	amounts []string,
	attestation string,
) (*interfaces.SettlementReceipt, error) {
	addrs, values, proof, err := e.normalize(recipients, amounts, attestation)
	if err != nil {
		return nil, err
	}

	e.logger.Info("Submitting settlement transaction",
		"contract", e.address.Hex(),
		"recipients", len(addrs))

	opts := *e.auth
	opts.Context = ctx

	tx, err := e.contract.Transact(&opts, "batchSettle", addrs, values, proof)
	if err != nil {
		// Gas estimation replays the call, so known contract rejections
		// surface here with their revert data attached.
		return nil, decodeContractError(err)
	}

	receipt, err := bind.WaitMined(ctx, e.client, tx)
	if err != nil {
		return nil, &errors.BlockchainError{Operation: "WaitMined", ChainID: e.chainID, Err: err}
	}

	if receipt.Status == 0 {
		return nil, e.replayFailedCall(ctx, addrs, values, proof, receipt.BlockNumber, tx.Hash())
	}

	e.logger.Info("Settlement transaction mined",
		"txHash", tx.Hash().Hex(),
		"block", receipt.BlockNumber.Uint64())

	return &interfaces.SettlementReceipt{
		TxHash:      tx.Hash(),
		ExplorerURL: fmt.Sprintf("%s/tx/%s", e.explorerURL, tx.Hash().Hex()),
	}, nil
}

// normalize validates caller input and converts it to contract types.
func (e *settlementExecutor) normalize(
	recipients []string,
	amounts []string,
	attestation string,
) ([]common.Address, []*big.Int, [32]byte, error) {
	verr := &errors.ValidationError{}
	var proof [32]byte

	if len(recipients) == 0 {
		verr.AddFieldError("recipients", "at least one recipient is required")
	}
	if len(recipients) != len(amounts) {
		verr.AddFieldError("amounts", "recipients and amounts must have equal length")
	}

	addrs := make([]common.Address, 0, len(recipients))
	for i, r := range recipients {
		if !common.IsHexAddress(r) {
			verr.AddFieldError("recipients", fmt.Sprintf("recipient %d is not a valid address", i))
			continue
		}
		// HexToAddress + Hex yields the canonical checksummed form; inputs
		// may arrive with inconsistent casing.
		addrs = append(addrs, common.HexToAddress(r))
	}

	values := make([]*big.Int, 0, len(amounts))
	for i, a := range amounts {
		v, err := utils.ParseFixedPoint(a, e.decimals)
		if err != nil {
			verr.AddFieldError("amounts", fmt.Sprintf("amount %d: %v", i, err))
			continue
		}
		values = append(values, v)
	}

	raw, err := hexutil.Decode(attestation)
	if err != nil || len(raw) == 0 {
		verr.AddFieldError("attestation", "attestation must be non-empty hex data")
	} else if len(raw) > 32 {
		verr.AddFieldError("attestation", "attestation exceeds 32 bytes")
	} else {
		proof = common.BytesToHash(raw)
	}

	if verr.HasErrors() {
		return nil, nil, proof, verr
	}
	return addrs, values, proof, nil
}

// replayFailedCall re-executes a mined-but-reverted settlement as a read
// call at the failure block so the revert reason can be decoded.
func (e *settlementExecutor) replayFailedCall(
	ctx context.Context,
	addrs []common.Address,
	values []*big.Int,
	proof [32]byte,
	block *big.Int,
	txHash common.Hash,
) error {
	parsed := mustParseABI(settlementABI)
	data, err := parsed.Pack("batchSettle", addrs, values, proof)
	if err != nil {
		return errors.NewDomainError(errors.ErrExecution,
			fmt.Sprintf("transaction %s reverted", txHash.Hex()))
	}

	msg := ethereum.CallMsg{From: e.auth.From, To: &e.address, Data: data}
	if _, callErr := e.client.CallContract(ctx, msg, block); callErr != nil {
		return decodeContractError(callErr)
	}

	return errors.NewDomainError(errors.ErrExecution,
		fmt.Sprintf("transaction %s reverted", txHash.Hex()))
}
