package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/lexicon"
)

// ExtractionService turns free text into a transaction candidate, using the
// language model when it is configured and the fallback parser otherwise.
type ExtractionService struct {
	model    adapter.LanguageModel
	gateway  *Gateway
	fallback *FallbackParser
}

// NewExtractionService creates a new ExtractionService instance.
func NewExtractionService(model adapter.LanguageModel, gateway *Gateway) *ExtractionService {
	return &ExtractionService{
		model:    model,
		gateway:  gateway,
		fallback: NewDefaultFallbackParser(),
	}
}

// ParseTransactionText parses text with the built-in vocabularies. It always
// returns a usable candidate.
func (s *ExtractionService) ParseTransactionText(ctx context.Context, text string) *entity.TransactionCandidate {
	return s.ParseWithWallets(ctx, text, nil)
}

// ParseWithWallets parses text, also recognizing the user's own wallets by
// name and keyword aliases.
func (s *ExtractionService) ParseWithWallets(ctx context.Context, text string, wallets []*entity.Wallet) *entity.TransactionCandidate {
	entries := walletEntries(wallets)
	fallback := s.fallback.WithWallets(entries...)

	if s.model == nil || !s.model.IsAvailable() {
		slog.Debug("language model not configured, using fallback parser")
		return fallback.Parse(text)
	}

	prompt := buildExtractionPrompt(text, lexicon.PromptCategories, promptWallets(entries))

	var candidate *entity.TransactionCandidate
	err := s.gateway.Execute(ctx, "parse_transaction", func(ctx context.Context, model string) error {
		raw, err := s.model.Generate(ctx, &adapter.GenerationRequest{
			Model:        model,
			Prompt:       prompt,
			JSONResponse: true,
		})
		if err != nil {
			return err
		}

		parsed, err := decodeCandidate(raw)
		if err != nil {
			return malformed(err)
		}
		candidate = parsed
		return nil
	})
	if err != nil {
		slog.Info("using fallback parser", "reason", err.Error())
		return fallback.Parse(text)
	}

	return candidate
}

// rawCandidate is the JSON shape requested from the model.
type rawCandidate struct {
	Item         string  `json:"item"`
	Amount       float64 `json:"amount"`
	Category     string  `json:"category"`
	SourceWallet string  `json:"source_wallet"`
	Type         string  `json:"type"`
}

// decodeCandidate parses and validates a model response.
func decodeCandidate(raw string) (*entity.TransactionCandidate, error) {
	var parsed rawCandidate
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	item := strings.TrimSpace(parsed.Item)
	if item == "" {
		return nil, errors.New("response has no item")
	}
	if parsed.Amount < 0 || math.IsNaN(parsed.Amount) || math.IsInf(parsed.Amount, 0) {
		return nil, fmt.Errorf("response amount %v is not a valid amount", parsed.Amount)
	}

	candidate := &entity.TransactionCandidate{
		Item:         item,
		Amount:       int64(math.Round(parsed.Amount)),
		Category:     lexicon.CategoryOrDefault(strings.TrimSpace(parsed.Category)),
		SourceWallet: strings.TrimSpace(parsed.SourceWallet),
		Source:       entity.CandidateSourceAI,
	}
	if candidate.SourceWallet == "" {
		candidate.SourceWallet = lexicon.DefaultWallet
	}

	switch entity.TransactionType(strings.ToLower(parsed.Type)) {
	case entity.TransactionTypeIncome:
		candidate.Type = entity.TransactionTypeIncome
	case entity.TransactionTypeExpense:
		candidate.Type = entity.TransactionTypeExpense
	}

	return candidate, nil
}

// walletEntries turns user wallets into keyword entries matched by name and aliases.
func walletEntries(wallets []*entity.Wallet) []lexicon.KeywordEntry {
	entries := make([]lexicon.KeywordEntry, 0, len(wallets))
	for _, w := range wallets {
		if w == nil || w.Name == "" {
			continue
		}
		keywords := append([]string{w.Name}, w.Keywords...)
		entries = append(entries, lexicon.KeywordEntry{Name: w.Name, Keywords: keywords})
	}
	return entries
}

// promptWallets lists the default wallet vocabulary followed by the user's own wallets.
func promptWallets(entries []lexicon.KeywordEntry) []string {
	names := make([]string, 0, len(lexicon.PromptWallets)+len(entries))
	seen := make(map[string]struct{}, cap(names))
	for _, name := range lexicon.PromptWallets {
		seen[strings.ToLower(name)] = struct{}{}
		names = append(names, name)
	}
	for _, entry := range entries {
		if _, ok := seen[strings.ToLower(entry.Name)]; ok {
			continue
		}
		seen[strings.ToLower(entry.Name)] = struct{}{}
		names = append(names, entry.Name)
	}
	return names
}
