// Package model defines database models for persistence layer.
package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/glaze-finance/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID           string         `gorm:"type:varchar(36);primaryKey"`
	UserID       string         `gorm:"type:varchar(128);not null;index"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Amount       int64          `gorm:"not null"`
	Category     string         `gorm:"type:varchar(64);not null"`
	SourceWallet string         `gorm:"type:varchar(64);not null"`
	Date         time.Time      `gorm:"not null;index"`
	Icon         string         `gorm:"type:varchar(64)"`
	Type         string         `gorm:"type:varchar(10)"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
	DeletedAt    gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		Amount:       m.Amount,
		Category:     m.Category,
		SourceWallet: m.SourceWallet,
		Date:         m.Date,
		Icon:         m.Icon,
		Type:         entity.TransactionType(m.Type),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// TransactionFromEntity converts a domain Transaction entity to a TransactionModel.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:           transaction.ID,
		UserID:       transaction.UserID,
		Title:        transaction.Title,
		Amount:       transaction.Amount,
		Category:     transaction.Category,
		SourceWallet: transaction.SourceWallet,
		Date:         transaction.Date,
		Icon:         transaction.Icon,
		Type:         string(transaction.Type),
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
}
