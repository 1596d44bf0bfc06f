package lexicon

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultAmount is returned when no number can be found in the text.
const DefaultAmount int64 = 50000

// AmountUnit is a suffix family and the multiplier it stands for.
type AmountUnit struct {
	Suffixes   []string
	Multiplier float64
	Optional   bool // Suffix may be absent (plain numbers)
}

// AmountUnits is tried in order; the first pattern with a match wins.
var AmountUnits = []AmountUnit{
	{Suffixes: []string{"jt", "juta"}, Multiplier: 1_000_000},
	{Suffixes: []string{"rb", "ribu", "k"}, Multiplier: 1_000},
	{Suffixes: []string{"rp", "rupiah"}, Multiplier: 1, Optional: true},
}

// AmountExtractor finds the first money amount in free text.
type AmountExtractor struct {
	patterns    []*regexp.Regexp
	multipliers []float64
	fallback    int64
}

// NewAmountExtractor compiles one pattern per unit.
func NewAmountExtractor(units []AmountUnit, fallback int64) *AmountExtractor {
	e := &AmountExtractor{fallback: fallback}
	for _, unit := range units {
		suffix := "(?:" + strings.Join(quoteAll(unit.Suffixes), "|") + ")"
		if unit.Optional {
			suffix += "?"
		}
		e.patterns = append(e.patterns, regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*`+suffix))
		e.multipliers = append(e.multipliers, unit.Multiplier)
	}
	return e
}

// Extract returns the amount in whole Rupiah, or the fallback when nothing matches.
// "25rb" -> 25000, "1,5jt" -> 1500000, "50000 rp" -> 50000.
func (e *AmountExtractor) Extract(text string) int64 {
	for i, pattern := range e.patterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value, err := strconv.ParseFloat(strings.Replace(match[1], ",", ".", 1), 64)
		if err != nil {
			continue
		}
		return int64(math.Round(value * e.multipliers[i]))
	}
	return e.fallback
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = regexp.QuoteMeta(v)
	}
	return out
}
