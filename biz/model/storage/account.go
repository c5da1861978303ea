package storage

import (
	"time"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AccountRecord struct {
	GormModel
	Username     string          `gorm:"size:64;not null;uniqueIndex"` // 登录账号,唯一索引
	PasswordHash string          `gorm:"size:128;not null"`
	FirstName    string          `gorm:"size:64;not null"`
	LastName     string          `gorm:"size:64;not null"`
	Holdings     []HoldingRecord `gorm:"foreignKey:AccountID"`
}

func (AccountRecord) TableName() string {
	return "accounts"
}

// HoldingRecord is one (symbol, units) position. The composite unique index
// enforces at most one row per symbol per account.
type HoldingRecord struct {
	GormModel
	AccountID uint    `gorm:"not null;uniqueIndex:idx_account_symbol"`
	Symbol    string  `gorm:"size:32;not null;uniqueIndex:idx_account_symbol"`
	Units     float64 `gorm:"not null"`
}

func (HoldingRecord) TableName() string {
	return "holdings"
}
