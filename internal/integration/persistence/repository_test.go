package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/glaze-finance/backend/internal/domain/entity"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
	"github.com/glaze-finance/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	base := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	older := entity.NewTransaction("u1", "Kopi", 25000, "Food", "GoPay", base.AddDate(0, 0, -1), "fast-food", entity.TransactionTypeExpense)
	newer := entity.NewTransaction("u1", "Gaji", 5000000, "Other", "BCA", base, "pricetag", entity.TransactionTypeIncome)
	other := entity.NewTransaction("u2", "Bakso", 15000, "Food", "Cash", base, "fast-food", "")
	for _, tx := range []*entity.Transaction{older, newer, other} {
		require.NoError(t, repo.Create(ctx, tx))
	}

	found, err := repo.FindByID(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kopi", found.Title)
	assert.Equal(t, int64(25000), found.Amount)
	assert.Equal(t, "GoPay", found.SourceWallet)

	list, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID, "most recent first")
	assert.True(t, list[0].IsIncome())

	require.NoError(t, repo.Delete(ctx, older.ID))
	_, err = repo.FindByID(ctx, older.ID)
	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, older.ID), domainerror.ErrTransactionNotFound)

	list, err = repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWalletRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewWalletRepository(newTestDB(t))

	jago := entity.NewWallet("u1", "Jago", "#000000", "#111111", "💳", []string{"jago", "bank jago"})
	require.NoError(t, repo.Create(ctx, jago))

	found, err := repo.FindByName(ctx, "u1", "JAGO")
	require.NoError(t, err)
	assert.Equal(t, jago.ID, found.ID)
	assert.Equal(t, []string{"jago", "bank jago"}, found.Keywords)

	_, err = repo.FindByName(ctx, "u2", "Jago")
	assert.ErrorIs(t, err, domainerror.ErrWalletNotFound)

	require.NoError(t, repo.AdjustBalance(ctx, jago.ID, -15000))
	require.NoError(t, repo.AdjustBalance(ctx, jago.ID, 40000))
	wallets, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, int64(25000), wallets[0].Balance)

	assert.ErrorIs(t, repo.AdjustBalance(ctx, "missing", 1), domainerror.ErrWalletNotFound)
}
