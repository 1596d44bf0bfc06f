package lexicon

import "strings"

// KeywordEntry maps a name to the keywords that identify it.
type KeywordEntry struct {
	Name     string
	Keywords []string
}

// KeywordTable is an ordered list of entries. Earlier entries win.
type KeywordTable []KeywordEntry

// Match returns the first entry with a keyword contained in text, ignoring case.
func (t KeywordTable) Match(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, entry := range t {
		for _, keyword := range entry.Keywords {
			if keyword != "" && strings.Contains(lower, strings.ToLower(keyword)) {
				return entry.Name, true
			}
		}
	}
	return "", false
}

// Extend returns a copy of the table with entries appended after the existing ones.
func (t KeywordTable) Extend(entries ...KeywordEntry) KeywordTable {
	out := make(KeywordTable, 0, len(t)+len(entries))
	out = append(out, t...)
	out = append(out, entries...)
	return out
}

// CategoryKeywords guesses a category from Indonesian free text.
var CategoryKeywords = KeywordTable{
	{Name: "Food", Keywords: []string{"makan", "kopi", "nasi", "ayam", "mie", "bakso", "sate", "nongkrong", "starbucks", "kfc", "mcd"}},
	{Name: "Transport", Keywords: []string{"grab", "gojek", "uber", "bensin", "parkir", "tol", "bus", "kereta", "ojol"}},
	{Name: "Shopping", Keywords: []string{"beli", "belanja", "shopee", "tokped", "lazada", "baju", "sepatu"}},
	{Name: "Entertainment", Keywords: []string{"nonton", "film", "bioskop", "netflix", "spotify", "game"}},
	{Name: "Bills", Keywords: []string{"listrik", "air", "wifi", "pulsa", "tagihan", "bayar"}},
	{Name: "Health", Keywords: []string{"obat", "dokter", "apotek", "rumah sakit", "vitamin"}},
}

// DefaultWallet is used when no wallet keyword is found.
const DefaultWallet = "Cash"

// WalletKeywords guesses the paying wallet from free text.
var WalletKeywords = KeywordTable{
	{Name: "GoPay", Keywords: []string{"gopay", "gojek"}},
	{Name: "OVO", Keywords: []string{"ovo"}},
	{Name: "Dana", Keywords: []string{"dana"}},
	{Name: "BCA", Keywords: []string{"bca", "bank bca"}},
	{Name: "ShopeePay", Keywords: []string{"shopee", "shopeepay", "spay"}},
	{Name: "LinkAja", Keywords: []string{"linkaja"}},
	{Name: DefaultWallet, Keywords: []string{"cash", "tunai", "uang"}},
}

// PromptWallets is the closed wallet vocabulary given to the language model.
var PromptWallets = []string{"BCA", "GoPay", "OVO", "Dana", DefaultWallet, "ShopeePay", "LinkAja"}
