package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/domain/entity"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
	"github.com/glaze-finance/backend/internal/domain/valueobject"
)

// PeriodInput represents the input shared by the analytics use cases.
type PeriodInput struct {
	UserID   string
	Period   string // week, month or year; empty means week
	TimeZone string // IANA zone the windows are resolved in; empty means the clock's zone
}

// periodQuery loads a user's transactions and resolves the requested period.
type periodQuery struct {
	transactionRepo adapter.TransactionRepository
	clock           func() time.Time
}

// periodData is what every analytics use case aggregates over.
type periodData struct {
	Transactions []*entity.Transaction
	Period       valueobject.Period
	Now          time.Time
	Windows      valueobject.PeriodWindows
}

func newPeriodQuery(transactionRepo adapter.TransactionRepository, clock func() time.Time) periodQuery {
	if clock == nil {
		clock = time.Now
	}
	return periodQuery{transactionRepo: transactionRepo, clock: clock}
}

func (q periodQuery) load(ctx context.Context, input PeriodInput) (*periodData, error) {
	if input.UserID == "" {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeMissingUserID,
			"user_id is required",
			domainerror.ErrMissingUserID,
		)
	}

	period, ok := valueobject.ParsePeriod(input.Period)
	if !ok {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("invalid period %q", input.Period),
			domainerror.ErrInvalidPeriod,
		)
	}

	loc, ok := valueobject.ParseTimeZone(input.TimeZone)
	if !ok {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidTimeZone,
			fmt.Sprintf("invalid time zone %q", input.TimeZone),
			domainerror.ErrInvalidTimeZone,
		)
	}

	transactions, err := q.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeAnalyticsInternalError,
			"failed to load transactions",
			err,
		)
	}

	now := valueobject.InZone(q.clock(), loc)
	return &periodData{
		Transactions: transactions,
		Period:       period,
		Now:          now,
		Windows:      ResolveDateRange(period, now),
	}, nil
}
