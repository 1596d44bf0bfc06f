package dto

import (
	"time"

	"github.com/glaze-finance/backend/internal/domain/entity"
)

// CreateWalletRequest represents the request body for wallet creation.
type CreateWalletRequest struct {
	Name          string   `json:"name" binding:"required"`
	ColorStart    string   `json:"color_start,omitempty"`
	ColorEnd      string   `json:"color_end,omitempty"`
	Icon          string   `json:"icon,omitempty"`
	AccountNumber string   `json:"account_number,omitempty"`
	Keywords      []string `json:"keywords,omitempty" binding:"omitempty,max=20"`
}

// WalletResponse represents a single wallet in API responses.
type WalletResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Balance       int64    `json:"balance"`
	ColorStart    string   `json:"color_start"`
	ColorEnd      string   `json:"color_end"`
	Icon          string   `json:"icon"`
	AccountNumber string   `json:"account_number,omitempty"`
	Keywords      []string `json:"keywords"`
	CreatedAt     string   `json:"created_at"`
}

// WalletListResponse represents the user's wallets.
type WalletListResponse struct {
	Wallets      []WalletResponse `json:"wallets"`
	TotalBalance int64            `json:"total_balance"`
}

// ToWalletResponse converts a Wallet entity to its response DTO.
func ToWalletResponse(w *entity.Wallet) WalletResponse {
	keywords := w.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return WalletResponse{
		ID:            w.ID,
		Name:          w.Name,
		Balance:       w.Balance,
		ColorStart:    w.ColorStart,
		ColorEnd:      w.ColorEnd,
		Icon:          w.Icon,
		AccountNumber: w.AccountNumber,
		Keywords:      keywords,
		CreatedAt:     w.CreatedAt.Format(time.RFC3339),
	}
}

// ToWalletListResponse converts wallets to a list response.
func ToWalletListResponse(wallets []*entity.Wallet, totalBalance int64) WalletListResponse {
	items := make([]WalletResponse, len(wallets))
	for i, w := range wallets {
		items[i] = ToWalletResponse(w)
	}
	return WalletListResponse{
		Wallets:      items,
		TotalBalance: totalBalance,
	}
}
