// Package analytics contains spending aggregation over a user's transactions.
package analytics

import (
	"time"

	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/valueobject"
)

// ResolveDateRange returns the current and previous windows of period around now.
// Windows start at local midnight and end one millisecond before the next window.
//   - Week: Monday to Sunday; previous is the seven days before.
//   - Month: the calendar month; previous is the full prior month.
//   - Year: the calendar year; previous is the full prior year.
//
// An unknown period resolves like a week.
func ResolveDateRange(period valueobject.Period, now time.Time) valueobject.PeriodWindows {
	loc := now.Location()

	switch period {
	case valueobject.PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return valueobject.PeriodWindows{
			Current:  window(start, start.AddDate(0, 1, 0)),
			Previous: window(start.AddDate(0, -1, 0), start),
		}
	case valueobject.PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return valueobject.PeriodWindows{
			Current:  window(start, start.AddDate(1, 0, 0)),
			Previous: window(start.AddDate(-1, 0, 0), start),
		}
	default:
		start := getWeekStartDate(now)
		return valueobject.PeriodWindows{
			Current:  window(start, start.AddDate(0, 0, 7)),
			Previous: window(start.AddDate(0, 0, -7), start),
		}
	}
}

func window(start, next time.Time) valueobject.DateRange {
	return valueobject.DateRange{Start: start, End: next.Add(-time.Millisecond)}
}

// getWeekStartDate returns the Monday of the week containing the given date.
func getWeekStartDate(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, date.Location())
}

// inRange keeps the transactions dated inside r, preserving input order.
func inRange(transactions []*entity.Transaction, r valueobject.DateRange) []*entity.Transaction {
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx != nil && r.Contains(tx.Date) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// expenses keeps the transactions that are not income.
func expenses(transactions []*entity.Transaction) []*entity.Transaction {
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if !tx.IsIncome() {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

func sumAmounts(transactions []*entity.Transaction) int64 {
	var total int64
	for _, tx := range transactions {
		total += tx.Amount
	}
	return total
}
