package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/glaze-finance/backend/internal/domain/entity"
)

// WalletModel represents the wallets table in the database.
type WalletModel struct {
	ID            string         `gorm:"type:varchar(36);primaryKey"`
	UserID        string         `gorm:"type:varchar(128);not null;index"`
	Name          string         `gorm:"type:varchar(50);not null"`
	Balance       int64          `gorm:"not null;default:0"`
	ColorStart    string         `gorm:"type:varchar(9)"`
	ColorEnd      string         `gorm:"type:varchar(9)"`
	Icon          string         `gorm:"type:varchar(16)"`
	AccountNumber string         `gorm:"type:varchar(64)"`
	Keywords      pq.StringArray `gorm:"type:text"` // Stored as an array literal so SQLite can hold it too
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
}

// TableName returns the table name for the WalletModel.
func (WalletModel) TableName() string {
	return "wallets"
}

// ToEntity converts a WalletModel to a domain Wallet entity.
func (m *WalletModel) ToEntity() *entity.Wallet {
	keywords := make([]string, len(m.Keywords))
	copy(keywords, m.Keywords)

	return &entity.Wallet{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Balance:       m.Balance,
		ColorStart:    m.ColorStart,
		ColorEnd:      m.ColorEnd,
		Icon:          m.Icon,
		AccountNumber: m.AccountNumber,
		Keywords:      keywords,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// WalletFromEntity converts a domain Wallet entity to a WalletModel.
func WalletFromEntity(wallet *entity.Wallet) *WalletModel {
	return &WalletModel{
		ID:            wallet.ID,
		UserID:        wallet.UserID,
		Name:          wallet.Name,
		Balance:       wallet.Balance,
		ColorStart:    wallet.ColorStart,
		ColorEnd:      wallet.ColorEnd,
		Icon:          wallet.Icon,
		AccountNumber: wallet.AccountNumber,
		Keywords:      pq.StringArray(wallet.Keywords),
		CreatedAt:     wallet.CreatedAt,
		UpdatedAt:     wallet.UpdatedAt,
	}
}

// AllModels lists every model managed by auto-migration.
func AllModels() []any {
	return []any{&TransactionModel{}, &WalletModel{}}
}
