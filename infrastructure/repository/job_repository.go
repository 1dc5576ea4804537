package repository

import (
	"context"
	goerrors "errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"tee-settlement/domain/entities"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
)

// defaultListLimit bounds the aggregation page when no limit is supplied.
const defaultListLimit = 500

// jobRepository implements the JobRepository interface.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *gorm.DB) interfaces.JobRepository {
	return &jobRepository{db: db}
}

// Upsert creates the job or merges it into an existing row. Concurrent
// upserts for the same task id are commutative for disjoint fields and
// last-write-wins for overlapping ones; no locking beyond the single-row
// write is applied.
func (r *jobRepository) Upsert(ctx context.Context, job entities.Job) (*entities.Job, error) {
	now := time.Now().UTC()

	var existing jobRow
	err := r.db.WithContext(ctx).Where("task_id = ?", job.TaskID).First(&existing).Error

	switch {
	case goerrors.Is(err, gorm.ErrRecordNotFound):
		row, encErr := newRow(job, now)
		if encErr != nil {
			return nil, &errors.RepositoryError{Operation: "Upsert.Encode", Entity: "Job", Err: encErr}
		}
		if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
			return nil, &errors.RepositoryError{Operation: "Upsert.Create", Entity: "Job", Err: err}
		}
		return row.toEntity()

	case err != nil:
		return nil, &errors.RepositoryError{Operation: "Upsert.Find", Entity: "Job", Err: err}
	}

	merged, err := mergeRow(existing, job, now)
	if err != nil {
		return nil, &errors.RepositoryError{Operation: "Upsert.Encode", Entity: "Job", Err: err}
	}
	if err := r.db.WithContext(ctx).Save(merged).Error; err != nil {
		return nil, &errors.RepositoryError{Operation: "Upsert.Save", Entity: "Job", Err: err}
	}
	return merged.toEntity()
}

// Patch applies a partial update to an existing job.
func (r *jobRepository) Patch(ctx context.Context, taskID string, patch entities.JobPatch) (*entities.Job, error) {
	if patch.IsEmpty() {
		return nil, errors.NewDomainError(errors.ErrInvalidInput, "patch carries no fields")
	}

	var row jobRow
	err := r.db.WithContext(ctx).Where("task_id = ?", taskID).First(&row).Error
	if goerrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewDomainError(errors.ErrNotFound, "job "+taskID+" not found")
	}
	if err != nil {
		return nil, &errors.RepositoryError{Operation: "Patch.Find", Entity: "Job", Err: err}
	}

	if patch.Status != nil {
		row.Status = string(*patch.Status)
	}
	if patch.Error != nil {
		row.Error = patch.Error
	}
	// A result is set once; a later non-null result never overwrites it.
	if patch.Result != nil && row.Result == nil {
		encoded, encErr := encodeResult(patch.Result)
		if encErr != nil {
			return nil, &errors.RepositoryError{Operation: "Patch.Encode", Entity: "Job", Err: encErr}
		}
		row.Result = encoded
	}
	if patch.SettledTxHash != nil {
		row.SettledTxHash = patch.SettledTxHash
	}
	if patch.SettledAt != nil {
		row.SettledAt = patch.SettledAt
	}
	row.UpdatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, &errors.RepositoryError{Operation: "Patch.Save", Entity: "Job", Err: err}
	}
	return row.toEntity()
}

// FindByTaskID returns the job for a task id.
func (r *jobRepository) FindByTaskID(ctx context.Context, taskID string) (*entities.Job, error) {
	var row jobRow
	err := r.db.WithContext(ctx).Where("task_id = ?", taskID).First(&row).Error
	if goerrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewDomainError(errors.ErrNotFound, "job "+taskID+" not found")
	}
	if err != nil {
		return nil, &errors.RepositoryError{Operation: "FindByTaskID", Entity: "Job", Err: err}
	}
	return row.toEntity()
}

// ListByWallet lists jobs owned by a wallet, newest submission first.
// An empty wallet yields an empty list rather than an error.
func (r *jobRepository) ListByWallet(ctx context.Context, walletAddress string) ([]entities.Job, error) {
	wallet := strings.ToLower(strings.TrimSpace(walletAddress))
	if wallet == "" {
		return []entities.Job{}, nil
	}

	var rows []jobRow
	err := r.db.WithContext(ctx).
		Where("wallet_address = ?", wallet).
		Order("submitted_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, &errors.RepositoryError{Operation: "ListByWallet", Entity: "Job", Err: err}
	}

	return toEntities(rows)
}

// ListAll lists jobs up to limit, newest submission first.
func (r *jobRepository) ListAll(ctx context.Context, limit int) ([]entities.Job, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	var rows []jobRow
	err := r.db.WithContext(ctx).
		Order("submitted_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, &errors.RepositoryError{Operation: "ListAll", Entity: "Job", Err: err}
	}

	return toEntities(rows)
}

func toEntities(rows []jobRow) ([]entities.Job, error) {
	jobs := make([]entities.Job, 0, len(rows))
	for i := range rows {
		job, err := rows[i].toEntity()
		if err != nil {
			return nil, &errors.RepositoryError{Operation: "Decode", Entity: "Job", Err: err}
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// newRow builds a fresh row, applying creation defaults.
func newRow(job entities.Job, now time.Time) (*jobRow, error) {
	encoded, err := encodeResult(job.Result)
	if err != nil {
		return nil, err
	}

	row := &jobRow{
		TaskID:         job.TaskID,
		DealID:         job.DealID,
		WalletAddress:  strings.ToLower(job.WalletAddress),
		SettlementName: job.SettlementName,
		Status:         string(job.Status),
		Result:         encoded,
		SubmittedAt:    job.SubmittedAt,
		UpdatedAt:      now,
		SettledAt:      job.SettledAt,
	}
	if row.SettlementName == "" {
		row.SettlementName = entities.DefaultSettlementName
	}
	if row.Status == "" {
		row.Status = string(entities.JobStatusSubmitted)
	}
	if row.SubmittedAt.IsZero() {
		row.SubmittedAt = now
	}
	if job.Error != "" {
		row.Error = &job.Error
	}
	if job.DatasetURLOverride != "" {
		row.DatasetURLOverride = &job.DatasetURLOverride
	}
	if job.SettledTxHash != "" {
		row.SettledTxHash = &job.SettledTxHash
	}
	return row, nil
}

// mergeRow folds an idempotent re-create into the existing row: non-null
// incoming fields win, terminal fields are never discarded, and the first
// non-null result is kept. Status and error are taken verbatim.
func mergeRow(existing jobRow, job entities.Job, now time.Time) (*jobRow, error) {
	if existing.DealID == "" && job.DealID != "" {
		existing.DealID = job.DealID
	}
	if job.WalletAddress != "" {
		existing.WalletAddress = strings.ToLower(job.WalletAddress)
	}
	if job.SettlementName != "" {
		existing.SettlementName = job.SettlementName
	}
	if job.Status != "" {
		existing.Status = string(job.Status)
	}
	if job.Error != "" {
		existing.Error = &job.Error
	} else {
		existing.Error = nil
	}
	if job.DatasetURLOverride != "" {
		existing.DatasetURLOverride = &job.DatasetURLOverride
	}
	if existing.Result == nil && job.Result != nil {
		encoded, err := encodeResult(job.Result)
		if err != nil {
			return nil, err
		}
		existing.Result = encoded
	}
	existing.UpdatedAt = now
	return &existing, nil
}
