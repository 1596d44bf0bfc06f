// Package cache implements the daily insight cache on Redis or in process memory.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/domain/entity"
)

const keyPrefix = "insight"

// insightKey builds the cache key for a user's card on a calendar day.
func insightKey(userID string, day time.Time) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, userID, day.Format(time.DateOnly))
}

// redisInsightCache implements adapter.InsightCache on Redis.
type redisInsightCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisInsightCache creates a Redis backed insight cache. Entries expire after ttl.
func NewRedisInsightCache(client *redis.Client, ttl time.Duration) adapter.InsightCache {
	return &redisInsightCache{client: client, ttl: ttl}
}

// Get returns the cached insight, or nil on a miss.
func (c *redisInsightCache) Get(ctx context.Context, userID string, day time.Time) (*entity.DailyInsight, error) {
	data, err := c.client.Get(ctx, insightKey(userID, day)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read insight: %w", err)
	}

	var insight entity.DailyInsight
	if err := json.Unmarshal(data, &insight); err != nil {
		return nil, fmt.Errorf("failed to decode cached insight: %w", err)
	}
	return &insight, nil
}

// Set stores the insight for the given day.
func (c *redisInsightCache) Set(ctx context.Context, userID string, day time.Time, insight *entity.DailyInsight) error {
	data, err := json.Marshal(insight)
	if err != nil {
		return fmt.Errorf("failed to encode insight: %w", err)
	}
	if err := c.client.Set(ctx, insightKey(userID, day), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write insight: %w", err)
	}
	return nil
}

// globEscaper quotes the characters SCAN MATCH treats as wildcards.
var globEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "?", `\?`, "[", `\[`, "]", `\]`)

// Clear removes every cached insight of the user.
func (c *redisInsightCache) Clear(ctx context.Context, userID string) error {
	pattern := fmt.Sprintf("%s:%s:*", keyPrefix, globEscaper.Replace(userID))

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan insights: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear insights: %w", err)
	}
	return nil
}
