package insight

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/application/usecase/assistant"
	"github.com/glaze-finance/backend/internal/domain/entity"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
	"github.com/glaze-finance/backend/internal/domain/valueobject"
)

// GetDailyInsightInput represents the input for getting the daily card.
type GetDailyInsightInput struct {
	UserID       string
	ForceRefresh bool
	TimeZone     string // IANA zone of the user; empty means the clock's zone
}

// GetDailyInsightOutput represents the daily card.
type GetDailyInsightOutput struct {
	Insight *entity.DailyInsight
	Cached  bool
}

// Option customizes a GetDailyInsightUseCase.
type Option func(*GetDailyInsightUseCase)

// WithClock replaces the wall clock.
func WithClock(clock func() time.Time) Option {
	return func(uc *GetDailyInsightUseCase) { uc.clock = clock }
}

// WithPicker replaces the random template picker.
func WithPicker(pick func(n int) int) Option {
	return func(uc *GetDailyInsightUseCase) { uc.pick = pick }
}

// GetDailyInsightUseCase handles the once-a-day insight card.
type GetDailyInsightUseCase struct {
	transactionRepo adapter.TransactionRepository
	walletRepo      adapter.WalletRepository
	cache           adapter.InsightCache
	model           adapter.LanguageModel
	gateway         *assistant.Gateway
	clock           func() time.Time
	pick            func(n int) int
}

// NewGetDailyInsightUseCase creates a new GetDailyInsightUseCase instance.
func NewGetDailyInsightUseCase(
	transactionRepo adapter.TransactionRepository,
	walletRepo adapter.WalletRepository,
	cache adapter.InsightCache,
	model adapter.LanguageModel,
	gateway *assistant.Gateway,
	opts ...Option,
) *GetDailyInsightUseCase {
	uc := &GetDailyInsightUseCase{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
		cache:           cache,
		model:           model,
		gateway:         gateway,
		clock:           time.Now,
		pick:            rand.Intn,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute returns today's card, generating and caching it on a miss.
// Cache failures are logged and never returned.
func (uc *GetDailyInsightUseCase) Execute(ctx context.Context, input GetDailyInsightInput) (*GetDailyInsightOutput, error) {
	if input.UserID == "" {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeMissingUserID,
			"user_id is required",
			domainerror.ErrMissingUserID,
		)
	}

	loc, ok := valueobject.ParseTimeZone(input.TimeZone)
	if !ok {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidTimeZone,
			"invalid time zone "+input.TimeZone,
			domainerror.ErrInvalidTimeZone,
		)
	}

	now := valueobject.InZone(uc.clock(), loc)

	if uc.cache != nil {
		if input.ForceRefresh {
			if err := uc.cache.Clear(ctx, input.UserID); err != nil {
				slog.Warn("failed to clear insight cache", "user_id", input.UserID, "error", err)
			}
		} else {
			cached, err := uc.cache.Get(ctx, input.UserID, now)
			if err != nil {
				slog.Warn("failed to read insight cache", "user_id", input.UserID, "error", err)
			}
			if cached != nil {
				return &GetDailyInsightOutput{Insight: cached, Cached: true}, nil
			}
		}
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(domainerror.ErrCodeAnalyticsInternalError, "failed to load transactions", err)
	}

	wallets, err := uc.walletRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(domainerror.ErrCodeAnalyticsInternalError, "failed to load wallets", err)
	}

	snapshot := BuildFinancialSnapshot(transactions, wallets, now)

	card := uc.generate(ctx, snapshot)
	card.TopCategory = snapshot.TopCategory
	card.GeneratedAt = now

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, input.UserID, now, card); err != nil {
			slog.Warn("failed to cache insight", "user_id", input.UserID, "error", err)
		}
	}

	return &GetDailyInsightOutput{Insight: card}, nil
}

// generate asks the model for a card and falls back to templates on any failure.
func (uc *GetDailyInsightUseCase) generate(ctx context.Context, snapshot FinancialSnapshot) *entity.DailyInsight {
	if uc.model == nil || !uc.model.IsAvailable() || uc.gateway == nil {
		return FallbackInsight(snapshot, uc.pick)
	}

	prompt, err := buildInsightPrompt(snapshot)
	if err != nil {
		slog.Error("failed to build insight prompt", "error", err)
		return FallbackInsight(snapshot, uc.pick)
	}

	var card *entity.DailyInsight
	err = uc.gateway.Execute(ctx, "daily_insight", func(ctx context.Context, model string) error {
		raw, err := uc.model.Generate(ctx, &adapter.GenerationRequest{
			Model:        model,
			Prompt:       prompt,
			JSONResponse: true,
		})
		if err != nil {
			return err
		}

		decoded, err := decodeInsight(raw)
		if err != nil {
			return err
		}
		card = decoded
		return nil
	})
	if err != nil {
		slog.Info("using fallback insight", "reason", err.Error())
		return FallbackInsight(snapshot, uc.pick)
	}

	return card
}
