// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsIncome reports whether the type is income. An empty type is an expense,
// which keeps records written before the type field existed readable.
func (t TransactionType) IsIncome() bool {
	return t == TransactionTypeIncome
}

// Normalize returns the explicit type, mapping anything other than income to expense.
func (t TransactionType) Normalize() TransactionType {
	if t.IsIncome() {
		return TransactionTypeIncome
	}
	return TransactionTypeExpense
}

// Transaction represents a single money movement recorded by a user.
type Transaction struct {
	ID           string
	UserID       string
	Title        string
	Amount       int64 // Whole Rupiah, never negative
	Category     string
	SourceWallet string
	Date         time.Time
	Icon         string
	Type         TransactionType // Optional, empty means expense
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID string,
	title string,
	amount int64,
	category string,
	sourceWallet string,
	date time.Time,
	icon string,
	transactionType TransactionType,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        title,
		Amount:       amount,
		Category:     category,
		SourceWallet: sourceWallet,
		Date:         date,
		Icon:         icon,
		Type:         transactionType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsIncome reports whether the transaction adds money.
func (t *Transaction) IsIncome() bool {
	return t.Type.IsIncome()
}

// SignedAmount returns the effect of the transaction on a wallet balance.
func (t *Transaction) SignedAmount() int64 {
	if t.IsIncome() {
		return t.Amount
	}
	return -t.Amount
}
