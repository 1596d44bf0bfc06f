package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/lexicon"
	"github.com/glaze-finance/backend/internal/domain/valueobject"
)

// maxBreakdownEntries is the most rows a breakdown returns. When there are more
// categories, the top maxBreakdownEntries-1 are kept and the rest are summed.
const maxBreakdownEntries = 5

// CategoryBreakdownEntry represents a single category in the breakdown.
type CategoryBreakdownEntry struct {
	Name       string `json:"name"`
	Amount     int64  `json:"amount"`
	Percentage int64  `json:"percentage"`
	Color      string `json:"color"`
	Icon       string `json:"icon"`
}

// CategoryBreakdown sums the expenses of the current window per category,
// largest first. The rollup row is positional: a literal "Other" category in
// the top rows is not merged with it.
func CategoryBreakdown(transactions []*entity.Transaction, period valueobject.Period, now time.Time) []CategoryBreakdownEntry {
	windows := ResolveDateRange(period, now)
	spent := expenses(inRange(transactions, windows.Current))

	totals := make(map[string]int64)
	order := make([]string, 0)
	for _, tx := range spent {
		name := lexicon.CategoryOrDefault(tx.Category)
		if _, ok := totals[name]; !ok {
			order = append(order, name)
		}
		totals[name] += tx.Amount
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	grandTotal := sumAmounts(spent)
	entries := make([]CategoryBreakdownEntry, 0, min(len(order), maxBreakdownEntries))

	if len(order) > maxBreakdownEntries {
		var rest int64
		for _, name := range order[maxBreakdownEntries-1:] {
			rest += totals[name]
		}
		order = order[:maxBreakdownEntries-1]
		for _, name := range order {
			entries = append(entries, newBreakdownEntry(name, totals[name], grandTotal))
		}
		return append(entries, newBreakdownEntry(lexicon.DefaultCategory, rest, grandTotal))
	}

	for _, name := range order {
		entries = append(entries, newBreakdownEntry(name, totals[name], grandTotal))
	}
	return entries
}

func newBreakdownEntry(name string, amount, total int64) CategoryBreakdownEntry {
	style := lexicon.CategoryStyle(name)
	return CategoryBreakdownEntry{
		Name:       name,
		Amount:     amount,
		Percentage: percentOf(amount, total),
		Color:      style.Color,
		Icon:       style.Icon,
	}
}

// percentOf returns round(part / total * 100), or 0 when total is 0.
func percentOf(part, total int64) int64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		Round(0).
		IntPart()
}
