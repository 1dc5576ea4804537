package repository

import (
	"context"
	goerrors "errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tee-settlement/domain/entities"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
)

// treasuryRepository implements the TreasuryRepository interface.
type treasuryRepository struct {
	db *gorm.DB
}

// NewTreasuryRepository creates a new treasury cache repository.
func NewTreasuryRepository(db *gorm.DB) interfaces.TreasuryRepository {
	return &treasuryRepository{db: db}
}

// Get returns the cached balance row for a settlement address.
func (r *treasuryRepository) Get(ctx context.Context, settlementAddress string) (*entities.TreasuryBalance, error) {
	var row treasuryRow
	err := r.db.WithContext(ctx).
		Where("settlement_address = ?", strings.ToLower(settlementAddress)).
		First(&row).Error
	if goerrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewDomainError(errors.ErrNotFound,
			"no cached balance for "+settlementAddress)
	}
	if err != nil {
		return nil, &errors.RepositoryError{Operation: "Get", Entity: "TreasuryBalance", Err: err}
	}

	return &entities.TreasuryBalance{
		SettlementAddress: row.SettlementAddress,
		BalanceRaw:        row.BalanceRaw,
		BalanceFormatted:  row.BalanceFormatted,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}

// Put creates or overwrites the row for a settlement address.
// Last-write-wins is intentional; the row always reflects the most recent
// successful chain read.
func (r *treasuryRepository) Put(ctx context.Context, balance entities.TreasuryBalance) error {
	row := treasuryRow{
		SettlementAddress: strings.ToLower(balance.SettlementAddress),
		BalanceRaw:        balance.BalanceRaw,
		BalanceFormatted:  balance.BalanceFormatted,
		UpdatedAt:         balance.UpdatedAt,
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "settlement_address"}},
			UpdateAll: true,
		}).
		Create(&row).Error
	if err != nil {
		return &errors.RepositoryError{Operation: "Put", Entity: "TreasuryBalance", Err: err}
	}
	return nil
}
