package dependency

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/glaze-finance/backend/config"
	"github.com/glaze-finance/backend/internal/integration/cache"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestInjector_ClosesTheCacheItBuilt(t *testing.T) {
	server := miniredis.RunT(t)
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_URL", "redis://"+server.Addr()+"/0")

	injector, err := NewInjector(config.Load(), newTestDB(t), Options{})
	require.NoError(t, err)
	require.Len(t, injector.closers, 1)

	assert.NoError(t, injector.Close())
	assert.Empty(t, injector.closers)
	assert.NoError(t, injector.Close(), "a second Close is a no-op")
}

func TestInjector_LeavesInjectedCacheOpen(t *testing.T) {
	t.Setenv("REDIS_ENABLED", "false")
	cfg := config.Load()

	insightCache, err := cache.NewMemoryInsightCache(10, cfg.Insight.CacheTTL)
	require.NoError(t, err)

	injector, err := NewInjector(cfg, newTestDB(t), Options{InsightCache: insightCache})
	require.NoError(t, err)

	assert.Empty(t, injector.closers)
	assert.NoError(t, injector.Close())
}
