package wallet

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glaze-finance/backend/internal/domain/entity"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
)

type memoryWalletRepo struct {
	wallets   []*entity.Wallet
	createErr error
	findErr   error
}

func (r *memoryWalletRepo) Create(_ context.Context, wallet *entity.Wallet) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.wallets = append(r.wallets, wallet)
	return nil
}

func (r *memoryWalletRepo) FindByUser(_ context.Context, userID string) ([]*entity.Wallet, error) {
	var out []*entity.Wallet
	for _, w := range r.wallets {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *memoryWalletRepo) FindByName(_ context.Context, userID, name string) (*entity.Wallet, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, w := range r.wallets {
		if w.UserID == userID && strings.EqualFold(w.Name, name) {
			return w, nil
		}
	}
	return nil, domainerror.ErrWalletNotFound
}

func (r *memoryWalletRepo) AdjustBalance(_ context.Context, walletID string, delta int64) error {
	for _, w := range r.wallets {
		if w.ID == walletID {
			w.Balance += delta
			return nil
		}
	}
	return domainerror.ErrWalletNotFound
}

func TestListWallets_SeedsDefaultsOnce(t *testing.T) {
	repo := &memoryWalletRepo{}
	uc := NewListWalletsUseCase(repo)

	out, err := uc.Execute(context.Background(), ListWalletsInput{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, out.Wallets, 4)

	names := make([]string, 0, len(out.Wallets))
	for _, w := range out.Wallets {
		names = append(names, w.Name)
		assert.Equal(t, "u1", w.UserID)
		assert.Zero(t, w.Balance)
	}
	assert.Equal(t, []string{"BCA", "GoPay", "OVO", "Cash"}, names)
	assert.Zero(t, out.TotalBalance)

	out.Wallets[0].Balance = 250000
	again, err := uc.Execute(context.Background(), ListWalletsInput{UserID: "u1"})
	require.NoError(t, err)
	assert.Len(t, again.Wallets, 4)
	assert.Len(t, repo.wallets, 4)
	assert.Equal(t, int64(250000), again.TotalBalance)
}

func TestListWallets_SeedFailure(t *testing.T) {
	repo := &memoryWalletRepo{createErr: errors.New("db down")}

	_, err := NewListWalletsUseCase(repo).Execute(context.Background(), ListWalletsInput{UserID: "u1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BCA")

	var walletErr *domainerror.WalletError
	require.ErrorAs(t, err, &walletErr)
	assert.Equal(t, domainerror.ErrCodeWalletInternalError, walletErr.Code)
}

func TestCreateWallet(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateWalletInput
		wantCode domainerror.WalletErrorCode
	}{
		{name: "blank name", input: CreateWalletInput{UserID: "u1", Name: "  "}, wantCode: domainerror.ErrCodeWalletNameRequired},
		{name: "name too long", input: CreateWalletInput{UserID: "u1", Name: strings.Repeat("x", 51)}, wantCode: domainerror.ErrCodeWalletNameTooLong},
		{name: "bad color", input: CreateWalletInput{UserID: "u1", Name: "Jago", ColorStart: "red"}, wantCode: domainerror.ErrCodeInvalidWalletColor},
		{name: "duplicate ignoring case", input: CreateWalletInput{UserID: "u1", Name: "gopay"}, wantCode: domainerror.ErrCodeWalletNameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryWalletRepo{wallets: []*entity.Wallet{entity.NewWallet("u1", "GoPay", "", "", "", nil)}}

			_, err := NewCreateWalletUseCase(repo).Execute(context.Background(), tt.input)

			var walletErr *domainerror.WalletError
			require.ErrorAs(t, err, &walletErr)
			assert.Equal(t, tt.wantCode, walletErr.Code)
		})
	}
}

func TestCreateWallet_Success(t *testing.T) {
	repo := &memoryWalletRepo{wallets: []*entity.Wallet{entity.NewWallet("u2", "Jago", "", "", "", nil)}}

	out, err := NewCreateWalletUseCase(repo).Execute(context.Background(), CreateWalletInput{
		UserID:   "u1",
		Name:     " Jago ",
		Keywords: []string{"Jago", " bank jago ", "", "JAGO"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jago", out.Wallet.Name)
	assert.Equal(t, []string{"jago", "bank jago"}, out.Wallet.Keywords)
	assert.Equal(t, defaultColorStart, out.Wallet.ColorStart)
	assert.Equal(t, defaultIcon, out.Wallet.Icon)
	assert.Len(t, repo.wallets, 2)
}

func TestCreateWallet_LookupError(t *testing.T) {
	repo := &memoryWalletRepo{findErr: errors.New("timeout")}

	_, err := NewCreateWalletUseCase(repo).Execute(context.Background(), CreateWalletInput{UserID: "u1", Name: "Jago"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerror.ErrWalletNameTaken)
	assert.Empty(t, repo.wallets)
}
