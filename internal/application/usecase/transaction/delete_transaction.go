package transaction

import (
	"context"
	"errors"

	"github.com/glaze-finance/backend/internal/application/adapter"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID string
	UserID        string
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	walletRepo      adapter.WalletRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	walletRepo adapter.WalletRepository,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
	}
}

// Execute soft-deletes the transaction and reverses its wallet effect.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFound()
		}
		return nil, internalError("failed to find transaction", err)
	}

	// Other users' transactions are reported as missing.
	if transaction.UserID != input.UserID {
		return nil, notFound()
	}

	// A concurrent delete may win between FindByID and Delete.
	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFound()
		}
		return nil, internalError("failed to delete transaction", err)
	}

	applyWalletEffect(ctx, uc.walletRepo, transaction, -transaction.SignedAmount())

	return &DeleteTransactionOutput{
		Success: true,
	}, nil
}
