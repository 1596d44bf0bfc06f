package dto

import (
	"github.com/glaze-finance/backend/internal/application/usecase/analytics"
	"github.com/glaze-finance/backend/internal/domain/valueobject"
)

// PeriodTransactionsResponse represents the transactions of one analytics window.
type PeriodTransactionsResponse struct {
	Period       valueobject.Period    `json:"period"`
	Range        valueobject.DateRange `json:"range"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToPeriodTransactionsResponse converts a GetPeriodTransactionsOutput to its response DTO.
func ToPeriodTransactionsResponse(output *analytics.GetPeriodTransactionsOutput) PeriodTransactionsResponse {
	return PeriodTransactionsResponse{
		Period:       output.Period,
		Range:        output.Range,
		Transactions: ToTransactionListResponse(output.Transactions).Transactions,
	}
}
