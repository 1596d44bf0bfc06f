package entity

// CandidateSource tells where a parsed candidate came from.
type CandidateSource string

const (
	CandidateSourceAI       CandidateSource = "ai"
	CandidateSourceFallback CandidateSource = "fallback"
)

// TransactionCandidate is a transaction extracted from free text that has not
// been confirmed by the user yet. It is never persisted as-is.
type TransactionCandidate struct {
	Item         string          `json:"item"`
	Amount       int64           `json:"amount"`
	Category     string          `json:"category"`
	SourceWallet string          `json:"source_wallet"`
	Type         TransactionType `json:"type,omitempty"`
	Source       CandidateSource `json:"-"`
}
