// Package repository provides the gorm-backed persistence layer for
// settlement jobs and the treasury balance cache.
package repository

import (
	"encoding/json"
	"time"

	"tee-settlement/domain/entities"
)

// jobRow is the persisted shape of a settlement job. One row per task id.
type jobRow struct {
	TaskID             string    `gorm:"column:task_id;primaryKey"`
	DealID             string    `gorm:"column:deal_id"`
	WalletAddress      string    `gorm:"column:wallet_address;index"`
	SettlementName     string    `gorm:"column:settlement_name"`
	Status             string    `gorm:"column:status"`
	Result             *string   `gorm:"column:result;type:jsonb"`
	Error              *string   `gorm:"column:error"`
	DatasetURLOverride *string   `gorm:"column:dataset_url_override"`
	SubmittedAt        time.Time `gorm:"column:submitted_at;index"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
	SettledAt          *time.Time `gorm:"column:settled_at"`
	SettledTxHash      *string   `gorm:"column:settled_tx_hash"`
}

// TableName overrides the default table name.
func (jobRow) TableName() string {
	return "jobs"
}

func (r *jobRow) toEntity() (*entities.Job, error) {
	job := &entities.Job{
		TaskID:         r.TaskID,
		DealID:         r.DealID,
		WalletAddress:  r.WalletAddress,
		SettlementName: r.SettlementName,
		Status:         entities.JobStatus(r.Status),
		SubmittedAt:    r.SubmittedAt,
		UpdatedAt:      r.UpdatedAt,
		SettledAt:      r.SettledAt,
	}
	if r.Error != nil {
		job.Error = *r.Error
	}
	if r.DatasetURLOverride != nil {
		job.DatasetURLOverride = *r.DatasetURLOverride
	}
	if r.SettledTxHash != nil {
		job.SettledTxHash = *r.SettledTxHash
	}
	if r.Result != nil {
		var result entities.TaskResult
		if err := json.Unmarshal([]byte(*r.Result), &result); err != nil {
			return nil, err
		}
		job.Result = &result
	}
	return job, nil
}

func encodeResult(result *entities.TaskResult) (*string, error) {
	if result == nil {
		return nil, nil
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	s := string(raw)
	return &s, nil
}

// treasuryRow is the persisted per-address treasury balance cache entry.
type treasuryRow struct {
	SettlementAddress string    `gorm:"column:settlement_address;primaryKey"`
	BalanceRaw        string    `gorm:"column:balance_raw"`
	BalanceFormatted  string    `gorm:"column:balance_formatted"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name.
func (treasuryRow) TableName() string {
	return "treasury_balances"
}
