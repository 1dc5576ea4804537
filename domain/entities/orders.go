package entities

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TeeTag marks an order as requiring confidential (enclave) execution.
const TeeTag = "0x0000000000000000000000000000000000000000000000000000000000000001"

// AppOrder is an application-side order signed by the requester key. The
// RequesterRestrict field scopes the order to our own requester address so
// it cannot be consumed by third parties.
type AppOrder struct {
	App               common.Address `json:"app"`
	AppPrice          *big.Int       `json:"appprice"`
	Volume            *big.Int       `json:"volume"`
	Tag               string         `json:"tag"`
	RequesterRestrict common.Address `json:"requesterrestrict"`
	Salt              string         `json:"salt"`
	Signature         string         `json:"sign"`
}

// WorkerpoolOrder is a compute-pool order published on the marketplace
// order book.
type WorkerpoolOrder struct {
	Workerpool      common.Address `json:"workerpool"`
	WorkerpoolPrice *big.Int       `json:"workerpoolprice"`
	Volume          *big.Int       `json:"volume"`
	Tag             string         `json:"tag"`
	Category        uint64         `json:"category"`
	Salt            string         `json:"salt"`
	Signature       string         `json:"sign"`
}

// RequestOrder is the requester order referencing the chosen application and
// compute-pool category. The dataset is passed as an input-file URL, not a
// dataset-market object, so Dataset stays the zero address.
type RequestOrder struct {
	App                common.Address `json:"app"`
	AppMaxPrice        *big.Int       `json:"appmaxprice"`
	Dataset            common.Address `json:"dataset"`
	WorkerpoolMaxPrice *big.Int       `json:"workerpoolmaxprice"`
	Requester          common.Address `json:"requester"`
	Category           uint64         `json:"category"`
	InputFiles         []string       `json:"input_files"`
	Tag                string         `json:"tag"`
	Salt               string         `json:"salt"`
	Signature          string         `json:"sign"`
}

// TaskStatusCode is the numeric task state reported by the compute network.
type TaskStatusCode uint8

// TaskStatusCompleted is the single terminal success code. Every other code
// buckets into the generic "other" state as far as this service is concerned.
const TaskStatusCompleted TaskStatusCode = 3

// TaskStatus is the closed status enum exposed to callers.
type TaskStatus string

// TaskStatus constants.
const (
	TaskStatusCompletedLabel TaskStatus = "COMPLETED"
	TaskStatusOtherLabel     TaskStatus = "OTHER"
)

// MapTaskStatus reduces a network status code to the closed enum.
func MapTaskStatus(code TaskStatusCode) TaskStatus {
	if code == TaskStatusCompleted {
		return TaskStatusCompletedLabel
	}
	return TaskStatusOtherLabel
}
