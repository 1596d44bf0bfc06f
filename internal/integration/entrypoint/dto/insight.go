package dto

import (
	"github.com/glaze-finance/backend/internal/domain/entity"
)

// DailyInsightResponse represents the daily insight card.
type DailyInsightResponse struct {
	Data   *entity.DailyInsight `json:"data"`
	Cached bool                 `json:"cached"`
}
