// Package entities contains the core domain entities for the settlement service.
// It defines structures for settlement jobs, task results, and treasury balances.
package entities

import (
	"time"
)

// JobStatus represents the lifecycle state of a settlement job.
type JobStatus string

// JobStatus constants. A job moves submitted -> {completed, failed} -> settled,
// with settled reachable only from completed.
const (
	JobStatusSubmitted JobStatus = "submitted"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusSettled   JobStatus = "settled"
)

// DefaultSettlementName is used when a job is created without a display label.
const DefaultSettlementName = "TEE Settlement"

// Payout is a single beneficiary entry computed inside the enclave.
type Payout struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

// TaskResult is the structured payload extracted from a completed task's
// result archive. Attestation is the proof-of-computation consumed exactly
// once by the settlement contract.
type TaskResult struct {
	Payouts     []Payout `json:"payouts"`
	Attestation string   `json:"attestation"`
}

// Job represents one confidential-computation run and its eventual settlement.
// TaskID is the primary key; a task id never maps to more than one row.
type Job struct {
	TaskID             string
	DealID             string
	WalletAddress      string
	SettlementName     string
	Status             JobStatus
	Result             *TaskResult
	Error              string
	DatasetURLOverride string
	SubmittedAt        time.Time
	UpdatedAt          time.Time
	SettledAt          *time.Time
	SettledTxHash      string
}

// JobPatch is a partial update applied to an existing job. Nil fields are
// left untouched.
type JobPatch struct {
	Status        *JobStatus
	Result        *TaskResult
	Error         *string
	SettledTxHash *string
	SettledAt     *time.Time
}

// IsEmpty reports whether the patch carries no fields at all.
func (p JobPatch) IsEmpty() bool {
	return p.Status == nil && p.Result == nil && p.Error == nil &&
		p.SettledTxHash == nil && p.SettledAt == nil
}

// JobStats aggregates jobs for the dashboard endpoint.
type JobStats struct {
	Total     int `json:"total"`
	Submitted int `json:"submitted"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Settled   int `json:"settled"`
}

// TreasuryBalance is the cached on-chain token balance held by one
// settlement contract. The row always reflects the most recent successful
// chain read that wrote it.
type TreasuryBalance struct {
	SettlementAddress string
	BalanceRaw        string
	BalanceFormatted  string
	UpdatedAt         time.Time
}

// BalanceSource identifies where a treasury balance read was served from.
type BalanceSource string

// BalanceSource constants.
const (
	BalanceSourceChain    BalanceSource = "chain"
	BalanceSourceDatabase BalanceSource = "database"
)
