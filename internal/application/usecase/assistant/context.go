package assistant

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/glaze-finance/backend/internal/domain/entity"
)

// recentTransactionLimit is how many transactions are quoted to the model.
const recentTransactionLimit = 5

// BuildFinancialContext summarizes the user's data for the chat prompt: the
// number of transactions and the most recent few.
func BuildFinancialContext(transactions []*entity.Transaction) string {
	recent := make([]*entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx != nil {
			recent = append(recent, tx)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}

	var sb strings.Builder
	sb.WriteString("Available Data:\n")
	sb.WriteString(fmt.Sprintf("- Total Transactions: %d\n", len(transactions)))
	sb.WriteString("- Recent Transactions:")
	for _, tx := range recent {
		sb.WriteString(fmt.Sprintf("\n- %s (%s): Rp %s on %s",
			tx.Title, tx.Type.Normalize(), FormatRupiah(tx.Amount), tx.Date.Format("2006-01-02")))
	}

	return sb.String()
}

// FormatRupiah groups thousands with dots: 1500000 -> "1.500.000".
func FormatRupiah(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(d)
	}
	return sign + sb.String()
}
