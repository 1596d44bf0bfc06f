// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/glaze-finance/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	// Returns ErrTransactionNotFound if not found or soft-deleted.
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a given user, most recent first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Transaction, error)

	// Delete soft-deletes a transaction by its ID.
	Delete(ctx context.Context, id string) error
}
