package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/valueobject"
)

// SpendingStats summarizes the expenses of the current window.
type SpendingStats struct {
	TotalSpent          int64 `json:"total_spent"`
	TransactionCount    int   `json:"transaction_count"`
	AverageTransaction  int64 `json:"average_transaction"`
	PeriodChangePercent int64 `json:"period_change_percent"`
}

// ComputeSpendingStats totals the current window's expenses and compares them
// with the previous window. Month and year windows are compared as full
// calendar periods, so months of different lengths are not normalized.
func ComputeSpendingStats(transactions []*entity.Transaction, period valueobject.Period, now time.Time) SpendingStats {
	windows := ResolveDateRange(period, now)

	current := expenses(inRange(transactions, windows.Current))
	currentTotal := sumAmounts(current)
	previousTotal := sumAmounts(expenses(inRange(transactions, windows.Previous)))

	stats := SpendingStats{
		TotalSpent:       currentTotal,
		TransactionCount: len(current),
	}

	if len(current) > 0 {
		stats.AverageTransaction = decimal.NewFromInt(currentTotal).
			Div(decimal.NewFromInt(int64(len(current)))).
			Round(0).
			IntPart()
	}

	if previousTotal != 0 {
		stats.PeriodChangePercent = percentOf(currentTotal-previousTotal, previousTotal)
	}

	return stats
}
