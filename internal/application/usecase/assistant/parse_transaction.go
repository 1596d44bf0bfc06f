package assistant

import (
	"context"
	"log/slog"
	"strings"

	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/domain/entity"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
)

// ParseTransactionInput represents the input for parsing free text.
type ParseTransactionInput struct {
	UserID string
	Text   string
}

// ParseTransactionOutput represents the parsed, unconfirmed transaction.
type ParseTransactionOutput struct {
	Candidate *entity.TransactionCandidate
}

// ParseTransactionUseCase handles turning a user's text into a candidate.
type ParseTransactionUseCase struct {
	extraction *ExtractionService
	walletRepo adapter.WalletRepository
}

// NewParseTransactionUseCase creates a new ParseTransactionUseCase instance.
func NewParseTransactionUseCase(extraction *ExtractionService, walletRepo adapter.WalletRepository) *ParseTransactionUseCase {
	return &ParseTransactionUseCase{
		extraction: extraction,
		walletRepo: walletRepo,
	}
}

// Execute parses the text. Only empty input is an error; every other failure
// degrades to the fallback parser.
func (uc *ParseTransactionUseCase) Execute(ctx context.Context, input ParseTransactionInput) (*ParseTransactionOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeEmptyInput,
			"text is required",
			domainerror.ErrEmptyInput,
		)
	}

	var wallets []*entity.Wallet
	if uc.walletRepo != nil && input.UserID != "" {
		found, err := uc.walletRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			slog.Warn("failed to load wallets for extraction", "user_id", input.UserID, "error", err)
		}
		wallets = found
	}

	return &ParseTransactionOutput{
		Candidate: uc.extraction.ParseWithWallets(ctx, text, wallets),
	}, nil
}
