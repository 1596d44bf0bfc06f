// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/domain/entity"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
)

const (
	// MaxWalletNameLength is the maximum allowed length for wallet names.
	MaxWalletNameLength = 50

	defaultColorStart = "#434343"
	defaultColorEnd   = "#000000"
	defaultIcon       = "💳"
)

var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// CreateWalletInput represents the input for wallet creation.
type CreateWalletInput struct {
	UserID        string
	Name          string
	ColorStart    string   // Optional
	ColorEnd      string   // Optional
	Icon          string   // Optional
	AccountNumber string   // Optional
	Keywords      []string // Optional aliases for text extraction
}

// CreateWalletOutput represents the output of wallet creation.
type CreateWalletOutput struct {
	Wallet *entity.Wallet
}

// CreateWalletUseCase handles wallet creation logic.
type CreateWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewCreateWalletUseCase creates a new CreateWalletUseCase instance.
func NewCreateWalletUseCase(walletRepo adapter.WalletRepository) *CreateWalletUseCase {
	return &CreateWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet creation.
func (uc *CreateWalletUseCase) Execute(ctx context.Context, input CreateWalletInput) (*CreateWalletOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNameRequired,
			"wallet name is required",
			domainerror.ErrWalletNameRequired,
		)
	}

	if len(name) > MaxWalletNameLength {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNameTooLong,
			fmt.Sprintf("wallet name must not exceed %d characters", MaxWalletNameLength),
			domainerror.ErrWalletNameTooLong,
		)
	}

	colorStart, colorEnd := orDefault(input.ColorStart, defaultColorStart), orDefault(input.ColorEnd, defaultColorEnd)
	if !hexColorRegex.MatchString(colorStart) || !hexColorRegex.MatchString(colorEnd) {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidWalletColor,
			"colors must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidWalletColor,
		)
	}

	_, err := uc.walletRepo.FindByName(ctx, input.UserID, name)
	switch {
	case err == nil:
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNameTaken,
			"a wallet with this name already exists",
			domainerror.ErrWalletNameTaken,
		)
	case !errors.Is(err, domainerror.ErrWalletNotFound):
		return nil, internalError("failed to check wallet name existence", err)
	}

	wallet := entity.NewWallet(
		input.UserID,
		name,
		colorStart,
		colorEnd,
		orDefault(input.Icon, defaultIcon),
		normalizeKeywords(input.Keywords),
	)
	wallet.AccountNumber = strings.TrimSpace(input.AccountNumber)

	if err := uc.walletRepo.Create(ctx, wallet); err != nil {
		return nil, internalError("failed to create wallet", err)
	}

	return &CreateWalletOutput{
		Wallet: wallet,
	}, nil
}

// normalizeKeywords lowercases and trims aliases, dropping blanks and duplicates.
func normalizeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		k := strings.ToLower(strings.TrimSpace(keyword))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

// internalError wraps a repository failure so it is answered with a WAL code.
func internalError(message string, err error) error {
	return domainerror.NewWalletError(domainerror.ErrCodeWalletInternalError, message, err)
}
