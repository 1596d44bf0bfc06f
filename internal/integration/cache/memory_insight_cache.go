package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/domain/entity"
)

// memoryInsightCache implements adapter.InsightCache in process with ristretto.
// Ristretto cannot list keys, so the keys written per user are tracked for Clear.
// Keys ristretto has expired or evicted are pruned from the index at most once per ttl.
type memoryInsightCache struct {
	cache *ristretto.Cache
	ttl   time.Duration

	mu         sync.Mutex
	keys       map[string]map[string]struct{}
	lastPruned time.Time
}

// NewMemoryInsightCache creates an in-process insight cache holding about maxItems cards.
func NewMemoryInsightCache(maxItems int64, ttl time.Duration) (adapter.InsightCache, error) {
	if maxItems <= 0 {
		maxItems = 1000
	}

	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxItems * 10,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create insight cache: %w", err)
	}

	return &memoryInsightCache{
		cache: c,
		ttl:   ttl,
		keys:  make(map[string]map[string]struct{}),
	}, nil
}

// Get returns the cached insight, or nil on a miss.
func (c *memoryInsightCache) Get(_ context.Context, userID string, day time.Time) (*entity.DailyInsight, error) {
	value, ok := c.cache.Get(insightKey(userID, day))
	if !ok {
		return nil, nil
	}

	insight, ok := value.(entity.DailyInsight)
	if !ok {
		return nil, nil
	}
	return &insight, nil
}

// Set stores a copy of the insight. The write is visible once Set returns.
func (c *memoryInsightCache) Set(_ context.Context, userID string, day time.Time, insight *entity.DailyInsight) error {
	key := insightKey(userID, day)

	if !c.cache.SetWithTTL(key, *insight, 1, c.ttl) {
		return fmt.Errorf("insight for %s was dropped by the cache", userID)
	}
	c.cache.Wait()

	c.mu.Lock()
	c.prune(time.Now())
	if c.keys[userID] == nil {
		c.keys[userID] = make(map[string]struct{})
	}
	c.keys[userID][key] = struct{}{}
	c.mu.Unlock()

	return nil
}

// Clear removes every cached insight of the user.
func (c *memoryInsightCache) Clear(_ context.Context, userID string) error {
	c.mu.Lock()
	keys := c.keys[userID]
	delete(c.keys, userID)
	c.mu.Unlock()

	for key := range keys {
		c.cache.Del(key)
	}
	return nil
}

// prune drops index entries whose card is no longer in the cache. Callers hold mu.
func (c *memoryInsightCache) prune(now time.Time) {
	if now.Sub(c.lastPruned) < c.ttl {
		return
	}
	c.lastPruned = now

	for userID, keys := range c.keys {
		for key := range keys {
			if _, ok := c.cache.Get(key); !ok {
				delete(keys, key)
			}
		}
		if len(keys) == 0 {
			delete(c.keys, userID)
		}
	}
}
