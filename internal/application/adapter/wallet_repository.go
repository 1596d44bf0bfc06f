package adapter

import (
	"context"

	"github.com/glaze-finance/backend/internal/domain/entity"
)

// WalletRepository defines the interface for wallet persistence operations.
type WalletRepository interface {
	// Create creates a new wallet in the database.
	Create(ctx context.Context, wallet *entity.Wallet) error

	// FindByUser retrieves all wallets of a user ordered by creation time.
	FindByUser(ctx context.Context, userID string) ([]*entity.Wallet, error)

	// FindByName retrieves a user's wallet by name, ignoring case.
	// Returns ErrWalletNotFound when the user has no such wallet.
	FindByName(ctx context.Context, userID, name string) (*entity.Wallet, error)

	// AdjustBalance adds delta (which may be negative) to a wallet balance.
	AdjustBalance(ctx context.Context, walletID string, delta int64) error
}
