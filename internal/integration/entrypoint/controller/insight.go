package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/glaze-finance/backend/internal/application/usecase/insight"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/dto"
)

// InsightController handles the daily insight card endpoint.
type InsightController struct {
	getDailyInsightUseCase *insight.GetDailyInsightUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(getDailyInsightUseCase *insight.GetDailyInsightUseCase) *InsightController {
	return &InsightController{
		getDailyInsightUseCase: getDailyInsightUseCase,
	}
}

// GetDaily handles GET /insights/daily requests. ?refresh=true bypasses the cache
// and ?tz= names the user's zone, which decides the calendar day.
func (c *InsightController) GetDaily(ctx *gin.Context) {
	refresh, _ := strconv.ParseBool(ctx.DefaultQuery("refresh", "false"))

	output, err := c.getDailyInsightUseCase.Execute(ctx.Request.Context(), insight.GetDailyInsightInput{
		UserID:       ctx.Param("user_id"),
		ForceRefresh: refresh,
		TimeZone:     ctx.Query("tz"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DailyInsightResponse{
		Data:   output.Insight,
		Cached: output.Cached,
	})
}
