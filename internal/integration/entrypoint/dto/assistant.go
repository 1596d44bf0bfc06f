package dto

import (
	"github.com/glaze-finance/backend/internal/domain/entity"
)

// ParseTransactionRequest represents the request body for text extraction.
type ParseTransactionRequest struct {
	Text string `json:"text"`
}

// CandidateResponse represents an unconfirmed transaction extracted from text.
type CandidateResponse struct {
	Item         string `json:"item"`
	Amount       int64  `json:"amount"`
	Category     string `json:"category"`
	SourceWallet string `json:"source_wallet"`
	Type         string `json:"type"`
	Source       string `json:"source"`
}

// ToCandidateResponse converts a TransactionCandidate to its response DTO.
func ToCandidateResponse(candidate *entity.TransactionCandidate) CandidateResponse {
	return CandidateResponse{
		Item:         candidate.Item,
		Amount:       candidate.Amount,
		Category:     candidate.Category,
		SourceWallet: candidate.SourceWallet,
		Type:         string(candidate.Type.Normalize()),
		Source:       string(candidate.Source),
	}
}

// ChatRequest represents the request body for a chat turn.
type ChatRequest struct {
	Message string  `json:"message"`
	Context *string `json:"context,omitempty"`
}

// ChatResponse represents the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
