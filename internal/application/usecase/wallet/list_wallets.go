package wallet

import (
	"context"
	"log/slog"

	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/lexicon"
)

// ListWalletsInput represents the input for listing wallets.
type ListWalletsInput struct {
	UserID string
}

// ListWalletsOutput represents the output of listing wallets.
type ListWalletsOutput struct {
	Wallets      []*entity.Wallet
	TotalBalance int64
}

// ListWalletsUseCase handles listing wallets logic.
type ListWalletsUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewListWalletsUseCase creates a new ListWalletsUseCase instance.
func NewListWalletsUseCase(walletRepo adapter.WalletRepository) *ListWalletsUseCase {
	return &ListWalletsUseCase{
		walletRepo: walletRepo,
	}
}

// Execute lists the user's wallets, seeding the default set on first use.
func (uc *ListWalletsUseCase) Execute(ctx context.Context, input ListWalletsInput) (*ListWalletsOutput, error) {
	wallets, err := uc.walletRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, internalError("failed to list wallets", err)
	}

	if len(wallets) == 0 {
		wallets, err = uc.seedDefaults(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
	}

	return &ListWalletsOutput{
		Wallets:      wallets,
		TotalBalance: entity.TotalBalance(wallets),
	}, nil
}

func (uc *ListWalletsUseCase) seedDefaults(ctx context.Context, userID string) ([]*entity.Wallet, error) {
	wallets := make([]*entity.Wallet, 0, len(lexicon.DefaultWallets))
	for _, preset := range lexicon.DefaultWallets {
		wallet := entity.NewWallet(userID, preset.Name, preset.ColorStart, preset.ColorEnd, preset.Icon, nil)
		if err := uc.walletRepo.Create(ctx, wallet); err != nil {
			return nil, internalError("failed to seed wallet "+preset.Name, err)
		}
		wallets = append(wallets, wallet)
	}

	slog.Info("seeded default wallets", "user_id", userID, "count", len(wallets))

	return wallets, nil
}
