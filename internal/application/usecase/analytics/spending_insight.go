package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/valueobject"
)

const (
	// roastShareThreshold is the share of weekly spending on food or drink above which the insight teases the user.
	roastShareThreshold = 40
	// swingThreshold is the week-over-week change, in percent, reported as a trend.
	swingThreshold = 20
)

// SpendingInsight is a one-line comment on the current week's spending.
type SpendingInsight struct {
	Emoji   string `json:"emoji"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ComputeSpendingInsight picks a comment for the current week:
// nothing spent, heavy food and drink spending, a large swing against last
// week, or otherwise the top category's share.
func ComputeSpendingInsight(transactions []*entity.Transaction, now time.Time) SpendingInsight {
	stats := ComputeSpendingStats(transactions, valueobject.PeriodWeek, now)
	if stats.TransactionCount == 0 {
		return SpendingInsight{
			Emoji:   "🎉",
			Title:   "No spending yet!",
			Message: "You haven't spent anything this week. Keep it up or treat yourself!",
		}
	}

	top := CategoryBreakdown(transactions, valueobject.PeriodWeek, now)[0]

	if (top.Name == "Food" || top.Name == "Drink") && top.Percentage > roastShareThreshold {
		thousands := decimal.NewFromInt(top.Amount).Div(decimal.NewFromInt(1000)).Round(0)
		return SpendingInsight{
			Emoji:   "🔥",
			Title:   "Roasting your spending",
			Message: fmt.Sprintf("You spent Rp %sk on %s this week? Seriously?", thousands.String(), strings.ToLower(top.Name)),
		}
	}

	if stats.PeriodChangePercent > swingThreshold {
		return SpendingInsight{
			Emoji:   "📈",
			Title:   "Spending is up!",
			Message: fmt.Sprintf("You're spending %d%% more than last week. Time to slow down?", stats.PeriodChangePercent),
		}
	}

	if stats.PeriodChangePercent < -swingThreshold {
		return SpendingInsight{
			Emoji:   "💪",
			Title:   "Great job saving!",
			Message: fmt.Sprintf("You're spending %d%% less than last week. Keep it up!", -stats.PeriodChangePercent),
		}
	}

	return SpendingInsight{
		Emoji:   "💸",
		Title:   "Top spending category",
		Message: fmt.Sprintf("%s took %d%% of your spending this week.", top.Name, top.Percentage),
	}
}
