package repo

import (
	"context"

	"stock_tracker/be/biz/model/storage"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *storage.AccountRecord) (*storage.AccountRecord, error) {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// FindByUsername returns (nil, nil) when the account does not exist. Holdings
// are preloaded in insertion order.
func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*storage.AccountRecord, error) {
	var m storage.AccountRecord
	err := r.db.WithContext(ctx).
		Preload("Holdings", func(db *gorm.DB) *gorm.DB {
			return db.Order("holdings.id ASC")
		}).
		Where("username = ?", username).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Delete removes the account and its holdings. Administrative use only, not
// routed.
func (r *AccountRepository) Delete(ctx context.Context, username string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m storage.AccountRecord
		err := tx.Where("username = ?", username).First(&m).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		if err := tx.Where("account_id = ?", m.ID).Delete(&storage.HoldingRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
}

// UpdateHoldingUnits is a single conditional UPDATE keyed on (account,
// symbol). The row count tells the caller whether the symbol existed, so
// concurrent mutations on the same account cannot lose updates.
func (r *AccountRepository) UpdateHoldingUnits(ctx context.Context, accountID uint, symbol string, units float64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&storage.HoldingRecord{}).
		Where("account_id = ? AND symbol = ?", accountID, symbol).
		Update("units", units)
	return res.RowsAffected, res.Error
}

// InsertHolding appends a new position. The composite unique index surfaces a
// duplicated-key error when the symbol already exists.
func (r *AccountRepository) InsertHolding(ctx context.Context, accountID uint, symbol string, units float64) error {
	return r.db.WithContext(ctx).Create(&storage.HoldingRecord{
		AccountID: accountID,
		Symbol:    symbol,
		Units:     units,
	}).Error
}

// DeleteHolding removes matching rows; deleting an absent symbol is a no-op.
func (r *AccountRepository) DeleteHolding(ctx context.Context, accountID uint, symbol string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("account_id = ? AND symbol = ?", accountID, symbol).
		Delete(&storage.HoldingRecord{})
	return res.RowsAffected, res.Error
}
