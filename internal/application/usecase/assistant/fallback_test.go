package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/lexicon"
)

func TestFallbackParser_Parse(t *testing.T) {
	parser := NewDefaultFallbackParser()

	tests := []struct {
		name     string
		input    string
		expected entity.TransactionCandidate
	}{
		{
			name:  "food paid in cash by default",
			input: "makan nasi padang 25rb",
			expected: entity.TransactionCandidate{
				Item: "Makan", Amount: 25000, Category: "Food", SourceWallet: "Cash",
			},
		},
		{
			name:  "transport with decimal juta",
			input: "naik grab ke kantor 1,5jt",
			expected: entity.TransactionCandidate{
				Item: "Naik", Amount: 1500000, Category: "Transport", SourceWallet: "Cash",
			},
		},
		{
			name:  "shopping through shopee wallet",
			input: "beli baju di shopee 150k",
			expected: entity.TransactionCandidate{
				Item: "Beli", Amount: 150000, Category: "Shopping", SourceWallet: "ShopeePay",
			},
		},
		{
			name:  "plain number and gopay",
			input: "Pulsa 50000 rp bayar pake gopay",
			expected: entity.TransactionCandidate{
				Item: "Pulsa", Amount: 50000, Category: "Bills", SourceWallet: "GoPay",
			},
		},
		{
			name:  "nothing recognized",
			input: "zzz",
			expected: entity.TransactionCandidate{
				Item: "Zzz", Amount: lexicon.DefaultAmount, Category: "Other", SourceWallet: "Cash",
			},
		},
		{
			name:  "blank input",
			input: "   ",
			expected: entity.TransactionCandidate{
				Item: UnknownItem, Amount: lexicon.DefaultAmount, Category: "Other", SourceWallet: "Cash",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Parse(tt.input)

			tt.expected.Source = entity.CandidateSourceFallback
			assert.Equal(t, tt.expected, *got)
		})
	}
}

func TestFallbackParser_WithWallets(t *testing.T) {
	parser := NewDefaultFallbackParser()
	custom := parser.WithWallets(lexicon.KeywordEntry{Name: "Jago", Keywords: []string{"jago"}})

	assert.Equal(t, "Jago", custom.Parse("topup 100rb via jago").SourceWallet)
	assert.Equal(t, "Cash", parser.Parse("topup 100rb via jago").SourceWallet)
	assert.Same(t, parser, parser.WithWallets())
}

func TestItemName(t *testing.T) {
	tests := map[string]string{
		"Ngopi 25rb pake gopay": "Ngopi",
		"ÉCLAIR 20rb":           "Éclair",
		"":                      UnknownItem,
		"\tkopi":                "Kopi",
	}

	for input, expected := range tests {
		if got := itemName(input); got != expected {
			t.Errorf("itemName(%q) = %q, want %q", input, got, expected)
		}
	}
}
