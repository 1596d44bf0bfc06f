package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wallet represents a place money is kept (bank account, e-wallet, cash).
type Wallet struct {
	ID            string
	UserID        string
	Name          string
	Balance       int64
	ColorStart    string
	ColorEnd      string
	Icon          string
	AccountNumber string
	Keywords      []string // Extra aliases used when guessing the wallet from free text
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewWallet creates a new Wallet entity with a zero balance.
func NewWallet(userID, name, colorStart, colorEnd, icon string, keywords []string) *Wallet {
	now := time.Now().UTC()

	return &Wallet{
		ID:         uuid.NewString(),
		UserID:     userID,
		Name:       name,
		ColorStart: colorStart,
		ColorEnd:   colorEnd,
		Icon:       icon,
		Keywords:   keywords,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// TotalBalance sums the balances of the given wallets.
func TotalBalance(wallets []*Wallet) int64 {
	var total int64
	for _, w := range wallets {
		total += w.Balance
	}
	return total
}
