// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/glaze-finance/backend/config"
	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/infra/dependency"
	"github.com/glaze-finance/backend/internal/integration/cache"
	"github.com/glaze-finance/backend/internal/integration/persistence"
	"github.com/glaze-finance/backend/internal/integration/persistence/model"
	"github.com/glaze-finance/backend/test/integration/mock"
)

// TestContext holds the state of one scenario.
type TestContext struct {
	server   *httptest.Server
	client   *http.Client
	headers  map[string]string
	response *response

	db          *mock.Db
	redis       *redis.Client
	redisServer *miniredis.Miniredis
	timeMock    *mock.Time
	model       *mock.LanguageModel

	transactionRepo adapter.TransactionRepository
	walletRepo      adapter.WalletRepository

	lastTransactionID string
}

type response struct {
	status int
	body   any
}

// testEnv keeps the gateway fast and the rate limiter permissive.
var testEnv = map[string]string{
	"ENV":                         "test",
	"GEMINI_MODELS":               "gemini-test-primary,gemini-test-secondary",
	"GEMINI_MIN_REQUEST_INTERVAL": "0s",
	"GEMINI_BACKOFF_BASE":         "1ms",
	"GEMINI_MAX_RETRIES":          "2",
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		for key, value := range testEnv {
			_ = os.Setenv(key, value)
		}
	})
}

// InitializeScenario wires a fresh server over the shared stores and registers all steps.
func InitializeScenario(ctx *godog.ScenarioContext) {
	redisClient, redisServer := mock.NewRedis()

	test := &TestContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"transactions": &model.TransactionModel{},
			"wallets":      &model.WalletModel{},
		}),
		redis:       redisClient,
		redisServer: redisServer,
		timeMock:    mock.NewTime(),
		model:       mock.NewLanguageModel(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	registerSetupSteps(ctx, test)
	registerRequestSteps(ctx, test)
	registerResponseSteps(ctx, test)
	registerStoreSteps(ctx, test)
}

func (t *TestContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.lastTransactionID = ""
	t.timeMock.Reset()
	t.model.Reset()

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	if err := mock.ClearRedis(t.redis); err != nil {
		return err
	}

	t.transactionRepo = persistence.NewTransactionRepository(t.db.DbConn)
	t.walletRepo = persistence.NewWalletRepository(t.db.DbConn)
	return nil
}

func (t *TestContext) startServer() error {
	if t.server != nil {
		return nil
	}

	cfg := config.Load()
	injector, err := dependency.NewInjector(cfg, t.db.DbConn, dependency.Options{
		InsightCache:    cache.NewRedisInsightCache(t.redis, cfg.Insight.CacheTTL),
		LanguageModel:   t.model,
		Clock:           t.timeMock.Now,
		DBHealthChecker: func() bool { return t.db.DbConn != nil },
	})
	if err != nil {
		return fmt.Errorf("failed to wire server: %w", err)
	}

	t.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	return nil
}
