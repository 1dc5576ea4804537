package blockchain

import (
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"tee-settlement/domain/errors"
)

// settlementABI is the subset of the settlement contract surface this
// service calls. The contract enforces one execution per attestation.
const settlementABI = `[
	{"type":"function","name":"batchSettle","stateMutability":"nonpayable",
	 "inputs":[{"name":"recipients","type":"address[]"},{"name":"amounts","type":"uint256[]"},{"name":"attestation","type":"bytes32"}],
	 "outputs":[]}
]`

// erc20ABI covers the token reads needed for treasury balances.
const erc20ABI = `[
	{"type":"function","name":"balanceOf","stateMutability":"view",
	 "inputs":[{"name":"account","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable",
	 "inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]}
]`

// Custom-error selectors of the deployed settlement contract. Kept as a
// fixed table so decoding stays exhaustive and testable.
const (
	selectorInsufficientTreasury = "0xf4d678b8" // InsufficientBalance()
	selectorAlreadySettled       = "0x903ea5aa" // AlreadySettled()
	selectorUnauthorizedExecutor = "0x82b42900" // Unauthorized()
)

// revertKinds maps a 4-byte selector prefix to its domain error kind and
// the remedy message shown to callers.
var revertKinds = map[string]struct {
	kind    error
	message string
}{
	selectorInsufficientTreasury: {
		kind:    errors.ErrInsufficientTreasury,
		message: "settlement contract balance too low, fund the treasury first",
	},
	selectorAlreadySettled: {
		kind:    errors.ErrAlreadySettled,
		message: "attestation was already settled, payouts cannot be replayed",
	},
	selectorUnauthorizedExecutor: {
		kind:    errors.ErrUnauthorizedExecutor,
		message: "signer is not the configured settlement executor",
	},
}

func mustParseABI(src string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded ABI: %v", err))
	}
	return parsed
}

// dataError is the shape geth RPC errors expose revert data through.
type dataError interface {
	ErrorData() interface{}
}

// decodeContractError translates a call/estimate failure into a domain
// error. Known selectors become their distinct kinds; everything else is a
// generic execution failure with the underlying message preserved.
func decodeContractError(err error) error {
	var de dataError
	if goerrors.As(err, &de) {
		if data, ok := de.ErrorData().(string); ok && len(data) >= 10 {
			if entry, known := revertKinds[strings.ToLower(data[:10])]; known {
				return errors.NewDomainError(entry.kind, entry.message)
			}
		}
	}
	return errors.NewDomainError(errors.ErrExecution, err.Error())
}
