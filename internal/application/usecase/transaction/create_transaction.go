// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/domain/entity"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
	"github.com/glaze-finance/backend/internal/domain/lexicon"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID       string
	Title        string
	Amount       int64
	Category     string
	SourceWallet string
	Date         *time.Time
	Type         entity.TransactionType
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	walletRepo      adapter.WalletRepository
	clock           func() time.Time
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	walletRepo adapter.WalletRepository,
	clock func() time.Time,
) *CreateTransactionUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
		clock:           clock,
	}
}

// Execute persists a confirmed transaction and applies it to the named wallet.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionTitle,
			"title is required",
			domainerror.ErrInvalidTransactionTitle,
		)
	}

	if input.Amount < 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if input.Type != "" && !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	category := lexicon.CategoryOrDefault(strings.TrimSpace(input.Category))

	wallet := strings.TrimSpace(input.SourceWallet)
	if wallet == "" {
		wallet = lexicon.DefaultWallet
	}

	date := uc.clock()
	if input.Date != nil {
		date = *input.Date
	}

	transaction := entity.NewTransaction(
		input.UserID,
		title,
		input.Amount,
		category,
		wallet,
		date,
		lexicon.CategoryIcon(category),
		input.Type.Normalize(),
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, internalError("failed to create transaction", err)
	}

	applyWalletEffect(ctx, uc.walletRepo, transaction, transaction.SignedAmount())

	return &CreateTransactionOutput{Transaction: transaction}, nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense || transactionType == entity.TransactionTypeIncome
}

// applyWalletEffect adds delta to the transaction's wallet when the user owns one
// with that name. The transaction itself is already stored, so failures are logged.
func applyWalletEffect(ctx context.Context, walletRepo adapter.WalletRepository, transaction *entity.Transaction, delta int64) {
	if walletRepo == nil || delta == 0 {
		return
	}

	wallet, err := walletRepo.FindByName(ctx, transaction.UserID, transaction.SourceWallet)
	if err != nil {
		if !errors.Is(err, domainerror.ErrWalletNotFound) {
			slog.Warn("failed to find wallet for transaction",
				"transaction_id", transaction.ID,
				"wallet", transaction.SourceWallet,
				"error", err,
			)
		}
		return
	}

	if err := walletRepo.AdjustBalance(ctx, wallet.ID, delta); err != nil {
		slog.Error("failed to adjust wallet balance",
			"transaction_id", transaction.ID,
			"wallet_id", wallet.ID,
			"delta", delta,
			"error", err,
		)
	}
}
