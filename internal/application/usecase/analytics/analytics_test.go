package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glaze-finance/backend/internal/domain/entity"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
	"github.com/glaze-finance/backend/internal/domain/valueobject"
)

// Wednesday, 12 March 2025.
var testNow = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

func tx(title string, amount int64, category string, date time.Time, txType entity.TransactionType) *entity.Transaction {
	return &entity.Transaction{
		ID:       title,
		Title:    title,
		Amount:   amount,
		Category: category,
		Date:     date,
		Type:     txType,
	}
}

func day(d int, hour int) time.Time {
	return time.Date(2025, time.March, d, hour, 0, 0, 0, time.UTC)
}

func TestResolveDateRange(t *testing.T) {
	tests := []struct {
		name          string
		period        valueobject.Period
		now           time.Time
		currentStart  time.Time
		currentEnd    time.Time
		previousStart time.Time
		previousEnd   time.Time
	}{
		{
			name:          "week from wednesday",
			period:        valueobject.PeriodWeek,
			now:           testNow,
			currentStart:  day(10, 0),
			currentEnd:    time.Date(2025, time.March, 16, 23, 59, 59, int(999*time.Millisecond), time.UTC),
			previousStart: day(3, 0),
			previousEnd:   time.Date(2025, time.March, 9, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:          "week from sunday belongs to the week that started monday",
			period:        valueobject.PeriodWeek,
			now:           day(16, 22),
			currentStart:  day(10, 0),
			currentEnd:    time.Date(2025, time.March, 16, 23, 59, 59, int(999*time.Millisecond), time.UTC),
			previousStart: day(3, 0),
			previousEnd:   time.Date(2025, time.March, 9, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:          "month uses the full prior calendar month",
			period:        valueobject.PeriodMonth,
			now:           testNow,
			currentStart:  day(1, 0),
			currentEnd:    time.Date(2025, time.March, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
			previousStart: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			previousEnd:   time.Date(2025, time.February, 28, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:          "january looks back into the prior year",
			period:        valueobject.PeriodMonth,
			now:           time.Date(2025, time.January, 31, 8, 0, 0, 0, time.UTC),
			currentStart:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			currentEnd:    time.Date(2025, time.January, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
			previousStart: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			previousEnd:   time.Date(2024, time.December, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:          "year",
			period:        valueobject.PeriodYear,
			now:           testNow,
			currentStart:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			currentEnd:    time.Date(2025, time.December, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
			previousStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			previousEnd:   time.Date(2024, time.December, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows := ResolveDateRange(tt.period, tt.now)

			assert.True(t, tt.currentStart.Equal(windows.Current.Start), "current start %s", windows.Current.Start)
			assert.True(t, tt.currentEnd.Equal(windows.Current.End), "current end %s", windows.Current.End)
			assert.True(t, tt.previousStart.Equal(windows.Previous.Start), "previous start %s", windows.Previous.Start)
			assert.True(t, tt.previousEnd.Equal(windows.Previous.End), "previous end %s", windows.Previous.End)
		})
	}
}

func TestResolveDateRange_UsesLocationOfNow(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2025, time.March, 10, 6, 0, 0, 0, wib)

	windows := ResolveDateRange(valueobject.PeriodWeek, now)

	assert.Equal(t, wib, windows.Current.Location())
	// Sunday 18:00 UTC is already Monday in Jakarta.
	assert.True(t, windows.Current.Contains(time.Date(2025, time.March, 9, 18, 0, 0, 0, time.UTC)))
}

func TestCategoryBreakdown(t *testing.T) {
	t.Run("two categories today", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx("Lunch", 100000, "Food", testNow, ""),
			tx("Grab", 50000, "Transport", testNow, entity.TransactionTypeExpense),
		}

		entries := CategoryBreakdown(transactions, valueobject.PeriodWeek, testNow)

		require.Len(t, entries, 2)
		assert.Equal(t, "Food", entries[0].Name)
		assert.Equal(t, int64(100000), entries[0].Amount)
		assert.Equal(t, int64(67), entries[0].Percentage)
		assert.Equal(t, "#F59E0B", entries[0].Color)
		assert.Equal(t, "fast-food", entries[0].Icon)
		assert.Equal(t, "Transport", entries[1].Name)
		assert.Equal(t, int64(33), entries[1].Percentage)
	})

	t.Run("empty list", func(t *testing.T) {
		entries := CategoryBreakdown(nil, valueobject.PeriodWeek, testNow)
		assert.Empty(t, entries)
	})

	t.Run("income and out-of-window expenses are ignored", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx("Salary", 9000000, "Salary", testNow, entity.TransactionTypeIncome),
			tx("Old", 70000, "Food", day(2, 12), ""),
			tx("Mystery", 30000, "", testNow, ""),
		}

		entries := CategoryBreakdown(transactions, valueobject.PeriodWeek, testNow)

		require.Len(t, entries, 1)
		assert.Equal(t, "Other", entries[0].Name)
		assert.Equal(t, int64(100), entries[0].Percentage)
		assert.Equal(t, "pricetag", entries[0].Icon)
	})

	t.Run("more than five categories roll into Other", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx("a", 60, "Food", testNow, ""),
			tx("b", 50, "Transport", testNow, ""),
			tx("c", 40, "Shopping", testNow, ""),
			tx("d", 30, "Bills", testNow, ""),
			tx("e", 20, "Health", testNow, ""),
			tx("f", 10, "Crypto", testNow, ""),
		}

		entries := CategoryBreakdown(transactions, valueobject.PeriodWeek, testNow)

		require.Len(t, entries, 5)
		assert.Equal(t, "Bills", entries[3].Name)
		assert.Equal(t, "Other", entries[4].Name)
		assert.Equal(t, int64(30), entries[4].Amount)

		var sum int64
		for _, e := range entries {
			sum += e.Percentage
		}
		assert.InDelta(t, 100, sum, 1)
	})

	t.Run("literal Other in the top rows is not merged with the rollup", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx("a", 100, "Other", testNow, ""),
			tx("b", 90, "Food", testNow, ""),
			tx("c", 80, "Transport", testNow, ""),
			tx("d", 70, "Bills", testNow, ""),
			tx("e", 60, "Health", testNow, ""),
			tx("f", 50, "Shopping", testNow, ""),
		}

		entries := CategoryBreakdown(transactions, valueobject.PeriodWeek, testNow)

		require.Len(t, entries, 5)
		assert.Equal(t, "Other", entries[0].Name)
		assert.Equal(t, int64(100), entries[0].Amount)
		assert.Equal(t, "Other", entries[4].Name)
		assert.Equal(t, int64(110), entries[4].Amount)
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx("a", 50, "Transport", testNow, ""),
			tx("b", 50, "Food", testNow, ""),
		}

		entries := CategoryBreakdown(transactions, valueobject.PeriodWeek, testNow)

		require.Len(t, entries, 2)
		assert.Equal(t, "Transport", entries[0].Name)
		assert.Equal(t, "Food", entries[1].Name)
	})
}

func TestTimeSeries_Week(t *testing.T) {
	transactions := []*entity.Transaction{
		tx("mon", 5000, "Food", day(10, 8), ""),
		tx("wed", 7000, "Food", day(12, 9), ""),
		tx("wed2", 3000, "Food", day(12, 20), ""),
		tx("salary", 100000, "Salary", day(12, 9), entity.TransactionTypeIncome),
		tx("next week", 9000, "Food", day(17, 9), ""),
		tx("last week", 9000, "Food", day(9, 9), ""),
	}

	points := TimeSeries(transactions, valueobject.PeriodWeek, testNow)

	require.Len(t, points, 7)
	assert.Equal(t, "Mon", points[0].Label)
	assert.Equal(t, "Sun", points[6].Label)
	assert.Equal(t, int64(5000), points[0].Amount)
	assert.Equal(t, int64(10000), points[2].Amount)
	assert.True(t, points[2].IsActive)

	var total int64
	for i, p := range points {
		total += p.Amount
		if i != 2 {
			assert.False(t, p.IsActive, "bucket %s", p.Label)
		}
	}
	assert.Equal(t, int64(15000), total)
}

func TestTimeSeries_Month(t *testing.T) {
	t.Run("thirty-one days have five buckets", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx("first", 1000, "Food", day(1, 9), ""),
			tx("seventh", 2000, "Food", day(7, 9), ""),
			tx("eighth", 4000, "Food", day(8, 9), ""),
			tx("last", 8000, "Food", day(31, 9), ""),
		}

		points := TimeSeries(transactions, valueobject.PeriodMonth, testNow)

		require.Len(t, points, 5)
		assert.Equal(t, "W1", points[0].Label)
		assert.Equal(t, "W5", points[4].Label)
		assert.Equal(t, int64(3000), points[0].Amount)
		assert.Equal(t, int64(4000), points[1].Amount)
		assert.Equal(t, int64(8000), points[4].Amount)
		assert.True(t, points[1].IsActive)
	})

	t.Run("february has four buckets", func(t *testing.T) {
		now := time.Date(2025, time.February, 28, 12, 0, 0, 0, time.UTC)

		points := TimeSeries(nil, valueobject.PeriodMonth, now)

		require.Len(t, points, 4)
		assert.True(t, points[3].IsActive)
	})
}

func TestTimeSeries_Year(t *testing.T) {
	transactions := []*entity.Transaction{
		tx("jan", 1000, "Food", time.Date(2025, time.January, 5, 9, 0, 0, 0, time.UTC), ""),
		tx("dec", 2000, "Food", time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC), ""),
		tx("last year", 5000, "Food", time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC), ""),
	}

	points := TimeSeries(transactions, valueobject.PeriodYear, testNow)

	require.Len(t, points, 12)
	assert.Equal(t, "Jan", points[0].Label)
	assert.Equal(t, int64(1000), points[0].Amount)
	assert.Equal(t, int64(0), points[2].Amount)
	assert.True(t, points[2].IsActive)
	assert.Equal(t, int64(2000), points[11].Amount)
}

func TestComputeSpendingStats(t *testing.T) {
	t.Run("two expenses today", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx("Lunch", 100000, "Food", testNow, ""),
			tx("Grab", 50000, "Transport", testNow, ""),
		}

		stats := ComputeSpendingStats(transactions, valueobject.PeriodWeek, testNow)

		assert.Equal(t, SpendingStats{TotalSpent: 150000, TransactionCount: 2, AverageTransaction: 75000}, stats)
	})

	t.Run("empty list is all zeros", func(t *testing.T) {
		assert.Equal(t, SpendingStats{}, ComputeSpendingStats(nil, valueobject.PeriodWeek, testNow))
	})

	t.Run("average is rounded", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx("a", 100, "Food", testNow, ""),
			tx("b", 100, "Food", testNow, ""),
			tx("c", 101, "Food", testNow, ""),
		}

		stats := ComputeSpendingStats(transactions, valueobject.PeriodWeek, testNow)

		assert.Equal(t, int64(100), stats.AverageTransaction)
		assert.InDelta(t, stats.TotalSpent, stats.AverageTransaction*int64(stats.TransactionCount), float64(stats.TransactionCount))
	})

	t.Run("change against previous week", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx("now", 150000, "Food", testNow, ""),
			tx("before", 100000, "Food", day(5, 12), ""),
			tx("income before", 500000, "Salary", day(5, 12), entity.TransactionTypeIncome),
		}

		stats := ComputeSpendingStats(transactions, valueobject.PeriodWeek, testNow)

		assert.Equal(t, int64(50), stats.PeriodChangePercent)
		assert.Equal(t, 1, stats.TransactionCount)
	})

	t.Run("no previous spending means no change", func(t *testing.T) {
		transactions := []*entity.Transaction{tx("now", 150000, "Food", testNow, "")}

		stats := ComputeSpendingStats(transactions, valueobject.PeriodMonth, testNow)

		assert.Equal(t, int64(0), stats.PeriodChangePercent)
	})

	t.Run("month compares whole calendar months", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx("march", 50000, "Food", day(2, 12), ""),
			tx("february", 200000, "Food", time.Date(2025, time.February, 3, 12, 0, 0, 0, time.UTC), ""),
		}

		stats := ComputeSpendingStats(transactions, valueobject.PeriodMonth, testNow)

		assert.Equal(t, int64(-75), stats.PeriodChangePercent)
	})
}

func TestFilterTransactions(t *testing.T) {
	transactions := []*entity.Transaction{
		tx("monday", 1000, "Food", day(10, 8), ""),
		tx("salary", 9000000, "Salary", day(11, 8), entity.TransactionTypeIncome),
		tx("wednesday", 2000, "Food", day(12, 8), ""),
		tx("last week", 3000, "Food", day(8, 8), ""),
	}

	filtered := FilterTransactions(transactions, valueobject.PeriodWeek, testNow)

	require.Len(t, filtered, 3)
	assert.Equal(t, "wednesday", filtered[0].Title)
	assert.Equal(t, "salary", filtered[1].Title)
	assert.Equal(t, "monday", filtered[2].Title)
	for i := 1; i < len(filtered); i++ {
		assert.False(t, filtered[i].Date.After(filtered[i-1].Date))
	}

	// The caller's slice keeps its order.
	assert.Equal(t, "monday", transactions[0].Title)
}

func TestComputeSpendingInsight(t *testing.T) {
	tests := []struct {
		name         string
		transactions []*entity.Transaction
		title        string
		message      string
	}{
		{
			name:         "nothing spent",
			transactions: []*entity.Transaction{tx("salary", 100, "Salary", testNow, entity.TransactionTypeIncome)},
			title:        "No spending yet!",
			message:      "You haven't spent anything this week. Keep it up or treat yourself!",
		},
		{
			name: "food heavy week",
			transactions: []*entity.Transaction{
				tx("Lunch", 100000, "Food", testNow, ""),
				tx("Grab", 50000, "Transport", testNow, ""),
			},
			title:   "Roasting your spending",
			message: "You spent Rp 100k on food this week? Seriously?",
		},
		{
			name: "spending up",
			transactions: []*entity.Transaction{
				tx("now", 150000, "Transport", testNow, ""),
				tx("before", 100000, "Transport", day(5, 12), ""),
			},
			title:   "Spending is up!",
			message: "You're spending 50% more than last week. Time to slow down?",
		},
		{
			name: "spending down",
			transactions: []*entity.Transaction{
				tx("now", 50000, "Transport", testNow, ""),
				tx("before", 100000, "Transport", day(5, 12), ""),
			},
			title:   "Great job saving!",
			message: "You're spending 50% less than last week. Keep it up!",
		},
		{
			name: "steady week",
			transactions: []*entity.Transaction{
				tx("now", 60000, "Bills", testNow, ""),
				tx("now2", 40000, "Transport", testNow, ""),
			},
			title:   "Top spending category",
			message: "Bills took 60% of your spending this week.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := ComputeSpendingInsight(tt.transactions, testNow)

			assert.Equal(t, tt.title, insight.Title)
			assert.Equal(t, tt.message, insight.Message)
			assert.NotEmpty(t, insight.Emoji)
		})
	}
}

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	err          error
	userID       string
}

func (r *fakeTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }

func (r *fakeTransactionRepo) FindByID(context.Context, string) (*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID string) ([]*entity.Transaction, error) {
	r.userID = userID
	return r.transactions, r.err
}

func (r *fakeTransactionRepo) Delete(context.Context, string) error { return nil }

func fixedClock() time.Time { return testNow }

func TestGetCategoryBreakdownUseCase_Execute(t *testing.T) {
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
		tx("Lunch", 100000, "Food", testNow, ""),
	}}
	uc := NewGetCategoryBreakdownUseCase(repo, fixedClock)

	output, err := uc.Execute(context.Background(), PeriodInput{UserID: "user-1", Period: "MONTH"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", repo.userID)
	assert.Equal(t, valueobject.PeriodMonth, output.Period)
	assert.True(t, day(1, 0).Equal(output.Range.Start))
	require.Len(t, output.Categories, 1)
	assert.Equal(t, int64(100), output.Categories[0].Percentage)
}

func TestPeriodUseCases_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input PeriodInput
		code  domainerror.AnalyticsErrorCode
		err   error
	}{
		{name: "missing user", input: PeriodInput{Period: "week"}, code: domainerror.ErrCodeMissingUserID, err: domainerror.ErrMissingUserID},
		{name: "bad period", input: PeriodInput{UserID: "u", Period: "decade"}, code: domainerror.ErrCodeInvalidPeriod, err: domainerror.ErrInvalidPeriod},
		{name: "bad time zone", input: PeriodInput{UserID: "u", TimeZone: "Mars/Olympus"}, code: domainerror.ErrCodeInvalidTimeZone, err: domainerror.ErrInvalidTimeZone},
	}

	uc := NewGetSpendingStatsUseCase(&fakeTransactionRepo{}, fixedClock)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)

			var analyticsErr *domainerror.AnalyticsError
			require.ErrorAs(t, err, &analyticsErr)
			assert.Equal(t, tt.code, analyticsErr.Code)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestPeriodUseCases_RepositoryFailure(t *testing.T) {
	repoErr := errors.New("connection refused")
	uc := NewGetTimeSeriesUseCase(&fakeTransactionRepo{err: repoErr}, fixedClock)

	_, err := uc.Execute(context.Background(), PeriodInput{UserID: "u"})

	assert.ErrorIs(t, err, repoErr)
}

func TestGetPeriodTransactionsUseCase_DefaultsToWeek(t *testing.T) {
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
		tx("this week", 1000, "Food", day(11, 8), ""),
		tx("this month", 1000, "Food", day(3, 8), ""),
	}}
	uc := NewGetPeriodTransactionsUseCase(repo, fixedClock)

	output, err := uc.Execute(context.Background(), PeriodInput{UserID: "u"})

	require.NoError(t, err)
	assert.Equal(t, valueobject.PeriodWeek, output.Period)
	require.Len(t, output.Transactions, 1)
	assert.Equal(t, "this week", output.Transactions[0].Title)
}

func TestPeriodUseCases_ResolveInUserTimeZone(t *testing.T) {
	// Monday 01:00 in Jakarta is still Sunday in UTC.
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
		tx("Sarapan", 25000, "Food", day(9, 18), ""),
	}}
	uc := NewGetSpendingStatsUseCase(repo, fixedClock)

	serverZone, err := uc.Execute(context.Background(), PeriodInput{UserID: "u"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), serverZone.TotalSpent)

	userZone, err := uc.Execute(context.Background(), PeriodInput{UserID: "u", TimeZone: "Asia/Jakarta"})
	require.NoError(t, err)
	assert.Equal(t, int64(25000), userZone.TotalSpent)
	assert.Equal(t, "Asia/Jakarta", userZone.Windows.Current.Location().String())
	assert.True(t, time.Date(2025, time.March, 9, 17, 0, 0, 0, time.UTC).Equal(userZone.Windows.Current.Start))
}
