package adapter

import (
	"context"
	"time"

	"github.com/glaze-finance/backend/internal/domain/entity"
)

// InsightCache stores at most one daily insight per user and calendar day.
type InsightCache interface {
	// Get returns the cached insight, or nil and no error on a miss.
	Get(ctx context.Context, userID string, day time.Time) (*entity.DailyInsight, error)

	// Set stores the insight for the given day.
	Set(ctx context.Context, userID string, day time.Time, insight *entity.DailyInsight) error

	// Clear removes every cached insight of the user.
	Clear(ctx context.Context, userID string) error
}
