package assistant

import (
	"context"
	"log/slog"
	"strings"

	"github.com/glaze-finance/backend/internal/application/adapter"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
)

// ChatInput represents the input for a chat turn.
type ChatInput struct {
	UserID  string
	Message string
	Context *string // Built from the user's transactions when nil
}

// ChatOutput represents the assistant's reply.
type ChatOutput struct {
	Reply string
}

// ChatUseCase handles a chat turn grounded in the user's transactions.
type ChatUseCase struct {
	chat            *ChatService
	transactionRepo adapter.TransactionRepository
}

// NewChatUseCase creates a new ChatUseCase instance.
func NewChatUseCase(chat *ChatService, transactionRepo adapter.TransactionRepository) *ChatUseCase {
	return &ChatUseCase{
		chat:            chat,
		transactionRepo: transactionRepo,
	}
}

// Execute answers the message.
func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeEmptyInput,
			"message is required",
			domainerror.ErrEmptyInput,
		)
	}

	var financialContext string
	switch {
	case input.Context != nil:
		financialContext = *input.Context
	case uc.transactionRepo != nil && input.UserID != "":
		transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			slog.Warn("failed to load transactions for chat context", "user_id", input.UserID, "error", err)
			break
		}
		if len(transactions) > 0 {
			financialContext = BuildFinancialContext(transactions)
		}
	}

	return &ChatOutput{
		Reply: uc.chat.Chat(ctx, message, financialContext),
	}, nil
}
