package analytics

import (
	"context"
	"time"

	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/valueobject"
)

// GetCategoryBreakdownOutput represents the output of getting the category breakdown.
type GetCategoryBreakdownOutput struct {
	Period     valueobject.Period       `json:"period"`
	Range      valueobject.DateRange    `json:"range"`
	Categories []CategoryBreakdownEntry `json:"categories"`
}

// GetCategoryBreakdownUseCase handles getting spending breakdown by category.
type GetCategoryBreakdownUseCase struct {
	query periodQuery
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository, clock func() time.Time) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{query: newPeriodQuery(transactionRepo, clock)}
}

// Execute retrieves spending breakdown by category for the requested period.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input PeriodInput) (*GetCategoryBreakdownOutput, error) {
	data, err := uc.query.load(ctx, input)
	if err != nil {
		return nil, err
	}

	return &GetCategoryBreakdownOutput{
		Period:     data.Period,
		Range:      data.Windows.Current,
		Categories: CategoryBreakdown(data.Transactions, data.Period, data.Now),
	}, nil
}

// GetTimeSeriesOutput represents the output of getting the spending chart.
type GetTimeSeriesOutput struct {
	Period valueobject.Period    `json:"period"`
	Range  valueobject.DateRange `json:"range"`
	Points []TimeSeriesPoint     `json:"points"`
}

// GetTimeSeriesUseCase handles getting bucketed spending for charts.
type GetTimeSeriesUseCase struct {
	query periodQuery
}

// NewGetTimeSeriesUseCase creates a new GetTimeSeriesUseCase instance.
func NewGetTimeSeriesUseCase(transactionRepo adapter.TransactionRepository, clock func() time.Time) *GetTimeSeriesUseCase {
	return &GetTimeSeriesUseCase{query: newPeriodQuery(transactionRepo, clock)}
}

// Execute retrieves the spending series for the requested period.
func (uc *GetTimeSeriesUseCase) Execute(ctx context.Context, input PeriodInput) (*GetTimeSeriesOutput, error) {
	data, err := uc.query.load(ctx, input)
	if err != nil {
		return nil, err
	}

	return &GetTimeSeriesOutput{
		Period: data.Period,
		Range:  data.Windows.Current,
		Points: TimeSeries(data.Transactions, data.Period, data.Now),
	}, nil
}

// GetSpendingStatsOutput represents the output of getting spending statistics.
type GetSpendingStatsOutput struct {
	Period  valueobject.Period        `json:"period"`
	Windows valueobject.PeriodWindows `json:"windows"`
	SpendingStats
}

// GetSpendingStatsUseCase handles getting spending statistics.
type GetSpendingStatsUseCase struct {
	query periodQuery
}

// NewGetSpendingStatsUseCase creates a new GetSpendingStatsUseCase instance.
func NewGetSpendingStatsUseCase(transactionRepo adapter.TransactionRepository, clock func() time.Time) *GetSpendingStatsUseCase {
	return &GetSpendingStatsUseCase{query: newPeriodQuery(transactionRepo, clock)}
}

// Execute retrieves spending statistics for the requested period.
func (uc *GetSpendingStatsUseCase) Execute(ctx context.Context, input PeriodInput) (*GetSpendingStatsOutput, error) {
	data, err := uc.query.load(ctx, input)
	if err != nil {
		return nil, err
	}

	return &GetSpendingStatsOutput{
		Period:        data.Period,
		Windows:       data.Windows,
		SpendingStats: ComputeSpendingStats(data.Transactions, data.Period, data.Now),
	}, nil
}

// GetPeriodTransactionsOutput represents the output of listing a period's transactions.
type GetPeriodTransactionsOutput struct {
	Period       valueobject.Period    `json:"period"`
	Range        valueobject.DateRange `json:"range"`
	Transactions []*entity.Transaction `json:"-"`
}

// GetPeriodTransactionsUseCase handles listing the transactions of a period.
type GetPeriodTransactionsUseCase struct {
	query periodQuery
}

// NewGetPeriodTransactionsUseCase creates a new GetPeriodTransactionsUseCase instance.
func NewGetPeriodTransactionsUseCase(transactionRepo adapter.TransactionRepository, clock func() time.Time) *GetPeriodTransactionsUseCase {
	return &GetPeriodTransactionsUseCase{query: newPeriodQuery(transactionRepo, clock)}
}

// Execute lists income and expenses of the requested period, most recent first.
func (uc *GetPeriodTransactionsUseCase) Execute(ctx context.Context, input PeriodInput) (*GetPeriodTransactionsOutput, error) {
	data, err := uc.query.load(ctx, input)
	if err != nil {
		return nil, err
	}

	return &GetPeriodTransactionsOutput{
		Period:       data.Period,
		Range:        data.Windows.Current,
		Transactions: FilterTransactions(data.Transactions, data.Period, data.Now),
	}, nil
}

// GetSpendingInsightUseCase handles the weekly spending comment.
type GetSpendingInsightUseCase struct {
	query periodQuery
}

// NewGetSpendingInsightUseCase creates a new GetSpendingInsightUseCase instance.
func NewGetSpendingInsightUseCase(transactionRepo adapter.TransactionRepository, clock func() time.Time) *GetSpendingInsightUseCase {
	return &GetSpendingInsightUseCase{query: newPeriodQuery(transactionRepo, clock)}
}

// Execute computes the insight for the current week.
func (uc *GetSpendingInsightUseCase) Execute(ctx context.Context, userID, timeZone string) (*SpendingInsight, error) {
	data, err := uc.query.load(ctx, PeriodInput{UserID: userID, TimeZone: timeZone})
	if err != nil {
		return nil, err
	}

	insight := ComputeSpendingInsight(data.Transactions, data.Now)
	return &insight, nil
}
