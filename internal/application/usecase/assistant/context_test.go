package assistant

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/glaze-finance/backend/internal/domain/entity"
)

func TestBuildFinancialContext(t *testing.T) {
	base := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	var transactions []*entity.Transaction
	for i := 0; i < 7; i++ {
		transactions = append(transactions, &entity.Transaction{
			Title:  "tx" + string(rune('A'+i)),
			Amount: int64(1000 * (i + 1)),
			Date:   base.AddDate(0, 0, i),
		})
	}
	transactions[6].Type = entity.TransactionTypeIncome

	got := BuildFinancialContext(transactions)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "Available Data:", lines[0])
	assert.Equal(t, "- Total Transactions: 7", lines[1])
	assert.Equal(t, "- Recent Transactions:", lines[2])
	assert.Len(t, lines, 8)
	assert.Equal(t, "- txG (income): Rp 7.000 on 2025-03-07", lines[3])
	assert.Equal(t, "- txC (expense): Rp 3.000 on 2025-03-03", lines[7])
}

func TestBuildFinancialContext_Empty(t *testing.T) {
	assert.Equal(t, "Available Data:\n- Total Transactions: 0\n- Recent Transactions:", BuildFinancialContext(nil))
}

func TestFormatRupiah(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1.000",
		25000:    "25.000",
		1500000:  "1.500.000",
		-1234567: "-1.234.567",
	}

	for amount, expected := range tests {
		assert.Equal(t, expected, FormatRupiah(amount), "amount %d", amount)
	}
}
