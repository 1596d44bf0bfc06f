package dto

import (
	"time"

	"github.com/glaze-finance/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// It usually carries a candidate returned by the parse endpoint after the user confirmed it.
type CreateTransactionRequest struct {
	Title        string  `json:"title" binding:"required,max=255"`
	Amount       int64   `json:"amount" binding:"min=0"`
	Category     string  `json:"category,omitempty" binding:"omitempty,max=64"`
	SourceWallet string  `json:"source_wallet,omitempty" binding:"omitempty,max=64"`
	Date         *string `json:"date,omitempty"` // RFC3339 or YYYY-MM-DD, defaults to now
	Type         string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Amount       int64  `json:"amount"`
	Category     string `json:"category"`
	SourceWallet string `json:"source_wallet"`
	Date         string `json:"date"`
	Icon         string `json:"icon"`
	Type         string `json:"type"`
	CreatedAt    string `json:"created_at"`
}

// TransactionListResponse represents a list of transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a Transaction entity to its response DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID,
		Title:        tx.Title,
		Amount:       tx.Amount,
		Category:     tx.Category,
		SourceWallet: tx.SourceWallet,
		Date:         tx.Date.Format(time.RFC3339),
		Icon:         tx.Icon,
		Type:         string(tx.Type.Normalize()),
		CreatedAt:    tx.CreatedAt.Format(time.RFC3339),
	}
}

// ToTransactionListResponse converts transactions to a list response.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		items[i] = ToTransactionResponse(tx)
	}
	return TransactionListResponse{
		Transactions: items,
		Total:        len(items),
	}
}

// ParseTransactionDate accepts RFC3339 timestamps and plain dates.
func ParseTransactionDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}
