// Package compute provides the compute-network infrastructure: the
// marketplace order book client, order assembly and matching, the task
// lifecycle observer and the result fetcher.
package compute

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// hubABI is the slice of the compute network's hub contract this service
// reads. Task lifecycle transitions are emitted as events on the same
// contract.
const hubABI = `[
	{"type":"function","name":"viewTaskStatus","stateMutability":"view",
	 "inputs":[{"name":"taskid","type":"bytes32"}],
	 "outputs":[{"name":"","type":"uint8"}]}
]`

// Task lifecycle event topics on the hub contract.
var (
	taskFinalizeTopic = crypto.Keccak256Hash([]byte("TaskFinalize(bytes32,bytes)"))
	taskFailedTopic   = crypto.Keccak256Hash([]byte("TaskFailed(bytes32)"))
)

func mustParseABI(src string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded ABI: %v", err))
	}
	return parsed
}

// DeriveTaskID computes the deterministic task identifier for a deal and
// task index: keccak256 of the deal id concatenated with the index.
// Single-task deals always use index 0.
func DeriveTaskID(dealID string, taskIndex uint64) string {
	deal := common.HexToHash(dealID)
	index := common.LeftPadBytes(new(big.Int).SetUint64(taskIndex).Bytes(), 32)
	return crypto.Keccak256Hash(deal.Bytes(), index).Hex()
}
