package interfaces

import (
	"context"

	"tee-settlement/domain/entities"
)

// JobRepository persists settlement jobs keyed by task id.
type JobRepository interface {
	// Upsert creates the job or, when the task id already exists, merges
	// non-null fields into the existing row without discarding terminal
	// fields. Status and error are taken verbatim from the latest call.
	Upsert(ctx context.Context, job entities.Job) (*entities.Job, error)

	// Patch applies a partial update. Returns ErrNotFound for an unknown
	// task id and ErrInvalidInput for an empty patch.
	Patch(ctx context.Context, taskID string, patch entities.JobPatch) (*entities.Job, error)

	// FindByTaskID returns the job for a task id, or ErrNotFound.
	FindByTaskID(ctx context.Context, taskID string) (*entities.Job, error)

	// ListByWallet lists jobs owned by a wallet, newest submission first.
	// An empty wallet yields an empty list, never an error.
	ListByWallet(ctx context.Context, walletAddress string) ([]entities.Job, error)

	// ListAll lists jobs up to limit, newest submission first.
	ListAll(ctx context.Context, limit int) ([]entities.Job, error)
}

// TreasuryRepository persists the per-address treasury balance cache.
type TreasuryRepository interface {
	// Get returns the cached row for a settlement address, or ErrNotFound.
	Get(ctx context.Context, settlementAddress string) (*entities.TreasuryBalance, error)

	// Put creates or overwrites the row for a settlement address.
	Put(ctx context.Context, balance entities.TreasuryBalance) error
}
