// Package dependency provides dependency injection for the application.
package dependency

import (
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/glaze-finance/backend/config"
	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/application/usecase/analytics"
	"github.com/glaze-finance/backend/internal/application/usecase/assistant"
	"github.com/glaze-finance/backend/internal/application/usecase/insight"
	"github.com/glaze-finance/backend/internal/application/usecase/transaction"
	"github.com/glaze-finance/backend/internal/application/usecase/wallet"
	"github.com/glaze-finance/backend/internal/infra/server/router"
	"github.com/glaze-finance/backend/internal/integration/adapters"
	"github.com/glaze-finance/backend/internal/integration/cache"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/controller"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/glaze-finance/backend/internal/integration/persistence"
)

// Options overrides collaborators that are otherwise built from config.
type Options struct {
	InsightCache    adapter.InsightCache
	LanguageModel   adapter.LanguageModel
	Clock           func() time.Time
	DBHealthChecker func() bool
}

// Injector holds all application dependencies.
type Injector struct {
	Config  *config.Config
	DB      *gorm.DB
	Gateway *assistant.Gateway
	Router  *router.Router

	closers []func() error
}

// Close releases the resources the injector created itself, such as a Redis
// client behind the insight cache. Collaborators passed in Options are left open.
func (i *Injector) Close() error {
	var errs []error
	for _, closeFn := range i.closers {
		errs = append(errs, closeFn())
	}
	i.closers = nil
	return errors.Join(errs...)
}

// NewGateway builds the shared language model gateway from config.
func NewGateway(cfg *config.Config, clock func() time.Time) *assistant.Gateway {
	gatewayCfg := assistant.GatewayConfig{
		Models:         cfg.Gemini.Models,
		MinInterval:    cfg.Gemini.MinRequestInterval,
		MaxRetries:     cfg.Gemini.MaxRetries,
		BackoffBase:    cfg.Gemini.BackoffBase,
		RequestTimeout: cfg.Gemini.RequestTimeout,
	}
	if clock != nil {
		return assistant.NewGateway(gatewayCfg, assistant.WithClock(clock))
	}
	return assistant.NewGateway(gatewayCfg)
}

// NewInsightCache returns the Redis cache when Redis is enabled, or the
// in-process cache otherwise. The returned func releases the cache's resources.
func NewInsightCache(cfg *config.Config) (adapter.InsightCache, func() error, error) {
	if !cfg.Redis.Enabled {
		c, err := cache.NewMemoryInsightCache(cfg.Insight.MemoryCacheSize, cfg.Insight.CacheTTL)
		if err != nil {
			return nil, nil, err
		}
		return c, func() error { return nil }, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}

	client := redis.NewClient(opts)
	return cache.NewRedisInsightCache(client, cfg.Insight.CacheTTL), client.Close, nil
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	walletRepo := persistence.NewWalletRepository(db)

	// Create adapters/services
	model := opts.LanguageModel
	if model == nil {
		model = adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Temperature)
	}

	var closers []func() error
	insightCache := opts.InsightCache
	if insightCache == nil {
		c, closeCache, err := NewInsightCache(cfg)
		if err != nil {
			return nil, err
		}
		insightCache = c
		closers = append(closers, closeCache)
	}

	gateway := NewGateway(cfg, opts.Clock)
	extraction := assistant.NewExtractionService(model, gateway)
	chat := assistant.NewChatService(model, gateway)

	// Create analytics use cases
	getCategoryBreakdownUseCase := analytics.NewGetCategoryBreakdownUseCase(transactionRepo, clock)
	getTimeSeriesUseCase := analytics.NewGetTimeSeriesUseCase(transactionRepo, clock)
	getSpendingStatsUseCase := analytics.NewGetSpendingStatsUseCase(transactionRepo, clock)
	getPeriodTransactionsUseCase := analytics.NewGetPeriodTransactionsUseCase(transactionRepo, clock)
	getSpendingInsightUseCase := analytics.NewGetSpendingInsightUseCase(transactionRepo, clock)

	// Create insight use cases
	getDailyInsightUseCase := insight.NewGetDailyInsightUseCase(
		transactionRepo, walletRepo, insightCache, model, gateway,
		insight.WithClock(clock),
	)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, walletRepo, clock)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, walletRepo)

	// Create wallet use cases
	listWalletsUseCase := wallet.NewListWalletsUseCase(walletRepo)
	createWalletUseCase := wallet.NewCreateWalletUseCase(walletRepo)

	// Create assistant use cases
	parseTransactionUseCase := assistant.NewParseTransactionUseCase(extraction, walletRepo)
	chatUseCase := assistant.NewChatUseCase(chat, transactionRepo)

	// Create controllers
	dbHealthChecker := opts.DBHealthChecker
	if dbHealthChecker == nil {
		dbHealthChecker = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}
	healthController := controller.NewHealthController(dbHealthChecker, model.IsAvailable, gateway.CurrentModel)

	analyticsController := controller.NewAnalyticsController(
		getCategoryBreakdownUseCase,
		getTimeSeriesUseCase,
		getSpendingStatsUseCase,
		getPeriodTransactionsUseCase,
		getSpendingInsightUseCase,
	)

	insightController := controller.NewInsightController(getDailyInsightUseCase)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		deleteTransactionUseCase,
	)

	walletController := controller.NewWalletController(listWalletsUseCase, createWalletUseCase)

	assistantController := controller.NewAssistantController(parseTransactionUseCase, chatUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var assistantRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		assistantRateLimiter = middleware.NewRateLimiter(1000, 1*time.Minute)
	} else {
		assistantRateLimiter = middleware.NewRateLimiter(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		analyticsController,
		insightController,
		transactionController,
		walletController,
		assistantController,
		assistantRateLimiter,
	)

	return &Injector{
		Config:  cfg,
		DB:      db,
		Gateway: gateway,
		Router:  r,
		closers: closers,
	}, nil
}
