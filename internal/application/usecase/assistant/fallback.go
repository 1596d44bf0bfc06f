package assistant

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/lexicon"
)

// UnknownItem is the item name used when the input has no words.
const UnknownItem = "Unknown Item"

// FallbackParser extracts a candidate with regular expressions and keyword
// tables. It never fails and never calls out.
type FallbackParser struct {
	amounts    *lexicon.AmountExtractor
	categories lexicon.KeywordTable
	wallets    lexicon.KeywordTable
}

// NewFallbackParser creates a parser over the given vocabularies.
func NewFallbackParser(categories, wallets lexicon.KeywordTable) *FallbackParser {
	return &FallbackParser{
		amounts:    lexicon.NewAmountExtractor(lexicon.AmountUnits, lexicon.DefaultAmount),
		categories: categories,
		wallets:    wallets,
	}
}

// NewDefaultFallbackParser creates a parser over the built-in vocabularies.
func NewDefaultFallbackParser() *FallbackParser {
	return NewFallbackParser(lexicon.CategoryKeywords, lexicon.WalletKeywords)
}

// WithWallets returns a parser that also recognizes the given wallet entries.
func (p *FallbackParser) WithWallets(entries ...lexicon.KeywordEntry) *FallbackParser {
	if len(entries) == 0 {
		return p
	}
	return &FallbackParser{
		amounts:    p.amounts,
		categories: p.categories,
		wallets:    p.wallets.Extend(entries...),
	}
}

// Parse builds a candidate from text.
func (p *FallbackParser) Parse(text string) *entity.TransactionCandidate {
	category, ok := p.categories.Match(text)
	if !ok {
		category = lexicon.DefaultCategory
	}

	wallet, ok := p.wallets.Match(text)
	if !ok {
		wallet = lexicon.DefaultWallet
	}

	return &entity.TransactionCandidate{
		Item:         itemName(text),
		Amount:       p.amounts.Extract(text),
		Category:     category,
		SourceWallet: wallet,
		Source:       entity.CandidateSourceFallback,
	}
}

// itemName capitalizes the first word of text.
func itemName(text string) string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return UnknownItem
	}
	first, size := utf8.DecodeRuneInString(words[0])
	return string(unicode.ToUpper(first)) + words[0][size:]
}
