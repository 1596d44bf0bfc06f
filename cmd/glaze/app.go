package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/glaze-finance/backend/config"
	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/application/usecase/assistant"
	"github.com/glaze-finance/backend/internal/domain/entity"
	"github.com/glaze-finance/backend/internal/domain/lexicon"
	"github.com/glaze-finance/backend/internal/infra/db"
	"github.com/glaze-finance/backend/internal/infra/dependency"
	"github.com/glaze-finance/backend/internal/integration/adapters"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/dto"
	"github.com/glaze-finance/backend/internal/integration/persistence"
	"github.com/glaze-finance/backend/internal/integration/persistence/model"
)

// localUserID owns every record of a CLI session.
const localUserID = "local"

// app is the per-command wiring over an in-memory SQLite store.
type app struct {
	cfg             *config.Config
	database        *db.Database
	transactionRepo adapter.TransactionRepository
	walletRepo      adapter.WalletRepository
	model           *adapters.GeminiService
}

func newApp() (*app, error) {
	cfg := config.Load()

	database, err := db.NewSQLiteConnection(&config.DatabaseConfig{
		Driver:       db.DriverSQLite,
		URL:          ":memory:",
		MaxOpenConns: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	if err := database.AutoMigrate(model.AllModels()...); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}

	return &app{
		cfg:             cfg,
		database:        database,
		transactionRepo: persistence.NewTransactionRepository(database.DB()),
		walletRepo:      persistence.NewWalletRepository(database.DB()),
		model:           adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Temperature),
	}, nil
}

func (a *app) Close() error {
	return a.database.Close()
}

// fileTransaction is one entry of a --file transactions document.
type fileTransaction struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Amount       int64  `json:"amount"`
	Category     string `json:"category"`
	SourceWallet string `json:"source_wallet"`
	Date         string `json:"date"`
	Type         string `json:"type"`
}

// loadTransactions stores the transactions of a JSON array file for localUserID.
func (a *app) loadTransactions(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var entries []fileTransaction
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	for i, e := range entries {
		date, err := dto.ParseTransactionDate(e.Date)
		if err != nil {
			return 0, fmt.Errorf("entry %d: invalid date %q", i, e.Date)
		}

		category := lexicon.CategoryOrDefault(e.Category)
		tx := entity.NewTransaction(localUserID, e.Title, e.Amount, category, e.SourceWallet, date,
			lexicon.CategoryIcon(category), entity.TransactionType(e.Type))
		if e.ID != "" {
			tx.ID = e.ID
		}
		if err := a.transactionRepo.Create(ctx, tx); err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return len(entries), nil
}

// clock returns a fixed clock when now is set, or time.Now otherwise.
func clock(now string) (func() time.Time, error) {
	if now == "" {
		return time.Now, nil
	}
	t, err := time.Parse(time.RFC3339, now)
	if err != nil {
		return nil, fmt.Errorf("invalid --now %q: %w", now, err)
	}
	return func() time.Time { return t }, nil
}

func (a *app) gateway(now func() time.Time) *assistant.Gateway {
	return dependency.NewGateway(a.cfg, now)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
