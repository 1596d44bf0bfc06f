// Package insight contains the daily insight card use case.
package insight

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/lexicon"
)

// maxBudgetUsedPercent caps the reported budget usage.
const maxBudgetUsedPercent = 150

// FinancialSnapshot is the month-to-date summary an insight is written from.
type FinancialSnapshot struct {
	Transactions      []*entity.Transaction `json:"-"`
	TotalBalance      int64                 `json:"totalBalance"`
	TotalSpent        int64                 `json:"totalSpentThisMonth"`
	TotalIncome       int64                 `json:"totalIncomeThisMonth"`
	TopCategory       string                `json:"topSpendingCategory"`
	BudgetUsedPercent int64                 `json:"budgetUsedPercent"`
	TransactionCount  int                   `json:"transactionCount"`
}

// BuildFinancialSnapshot summarizes transactions dated on or after the first
// day of now's month. The budget is this month's income, or the total wallet
// balance when there is no income.
func BuildFinancialSnapshot(transactions []*entity.Transaction, wallets []*entity.Wallet, now time.Time) FinancialSnapshot {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	snapshot := FinancialSnapshot{
		TotalBalance: entity.TotalBalance(wallets),
		TopCategory:  lexicon.DefaultCategory,
	}

	spending := make(map[string]int64)
	var order []string
	for _, tx := range transactions {
		if tx == nil || tx.Date.Before(startOfMonth) {
			continue
		}
		snapshot.Transactions = append(snapshot.Transactions, tx)

		if tx.IsIncome() {
			snapshot.TotalIncome += tx.Amount
			continue
		}
		snapshot.TotalSpent += tx.Amount

		category := lexicon.CategoryOrDefault(tx.Category)
		if _, ok := spending[category]; !ok {
			order = append(order, category)
		}
		spending[category] += tx.Amount
	}
	snapshot.TransactionCount = len(snapshot.Transactions)

	sort.SliceStable(order, func(i, j int) bool {
		return spending[order[i]] > spending[order[j]]
	})
	if len(order) > 0 {
		snapshot.TopCategory = order[0]
	}

	budget := snapshot.TotalBalance
	if snapshot.TotalIncome > 0 {
		budget = snapshot.TotalIncome
	}
	if budget > 0 {
		percent := decimal.NewFromInt(snapshot.TotalSpent).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(budget)).
			Round(0).
			IntPart()
		snapshot.BudgetUsedPercent = min(percent, maxBudgetUsedPercent)
	}

	return snapshot
}
