package analytics

import (
	"sort"
	"time"

	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/valueobject"
)

// FilterTransactions returns every transaction of the current window, income
// included, most recent first. The input slice is not reordered.
func FilterTransactions(transactions []*entity.Transaction, period valueobject.Period, now time.Time) []*entity.Transaction {
	filtered := inRange(transactions, ResolveDateRange(period, now).Current)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered
}
