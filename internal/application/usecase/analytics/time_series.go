package analytics

import (
	"fmt"
	"time"

	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/valueobject"
)

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// TimeSeriesPoint represents a single chart bucket.
type TimeSeriesPoint struct {
	Label    string `json:"label"`
	Amount   int64  `json:"amount"`
	IsActive bool   `json:"is_active"`
}

// TimeSeries buckets the current window's expenses for charting:
// days of the week, weeks of the month (W1..W5) or months of the year.
// The bucket containing now is marked active.
func TimeSeries(transactions []*entity.Transaction, period valueobject.Period, now time.Time) []TimeSeriesPoint {
	current := ResolveDateRange(period, now).Current
	loc := current.Location()
	spent := expenses(inRange(transactions, current))

	var points []TimeSeriesPoint
	var bucketOf func(date time.Time) int
	var active int

	switch period {
	case valueobject.PeriodMonth:
		daysInMonth := current.End.Day()
		points = make([]TimeSeriesPoint, (daysInMonth+6)/7)
		for i := range points {
			points[i].Label = fmt.Sprintf("W%d", i+1)
		}
		bucketOf = func(date time.Time) int { return (date.Day() - 1) / 7 }
		active = (now.Day() - 1) / 7
	case valueobject.PeriodYear:
		points = make([]TimeSeriesPoint, len(monthLabels))
		for i := range points {
			points[i].Label = monthLabels[i]
		}
		bucketOf = func(date time.Time) int { return int(date.Month()) - 1 }
		active = int(now.Month()) - 1
	default:
		points = make([]TimeSeriesPoint, len(weekdayLabels))
		for i := range points {
			points[i].Label = weekdayLabels[i]
		}
		bucketOf = func(date time.Time) int { return daysBetween(current.Start, date) }
		active = daysBetween(current.Start, now)
	}

	for _, tx := range spent {
		idx := bucketOf(tx.Date.In(loc))
		if idx < 0 || idx >= len(points) {
			continue
		}
		points[idx].Amount += tx.Amount
	}

	if active >= 0 && active < len(points) {
		points[active].IsActive = true
	}

	return points
}

// daysBetween counts calendar days from a to b, ignoring the time of day.
func daysBetween(a, b time.Time) int {
	b = b.In(a.Location())
	from := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
