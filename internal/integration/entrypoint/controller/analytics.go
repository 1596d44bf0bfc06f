// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glaze-finance/backend/internal/application/usecase/analytics"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles analytics endpoints.
type AnalyticsController struct {
	getCategoryBreakdownUseCase  *analytics.GetCategoryBreakdownUseCase
	getTimeSeriesUseCase         *analytics.GetTimeSeriesUseCase
	getSpendingStatsUseCase      *analytics.GetSpendingStatsUseCase
	getPeriodTransactionsUseCase *analytics.GetPeriodTransactionsUseCase
	getSpendingInsightUseCase    *analytics.GetSpendingInsightUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	getCategoryBreakdownUseCase *analytics.GetCategoryBreakdownUseCase,
	getTimeSeriesUseCase *analytics.GetTimeSeriesUseCase,
	getSpendingStatsUseCase *analytics.GetSpendingStatsUseCase,
	getPeriodTransactionsUseCase *analytics.GetPeriodTransactionsUseCase,
	getSpendingInsightUseCase *analytics.GetSpendingInsightUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		getCategoryBreakdownUseCase:  getCategoryBreakdownUseCase,
		getTimeSeriesUseCase:         getTimeSeriesUseCase,
		getSpendingStatsUseCase:      getSpendingStatsUseCase,
		getPeriodTransactionsUseCase: getPeriodTransactionsUseCase,
		getSpendingInsightUseCase:    getSpendingInsightUseCase,
	}
}

func periodInput(ctx *gin.Context) analytics.PeriodInput {
	return analytics.PeriodInput{
		UserID:   ctx.Param("user_id"),
		Period:   ctx.Query("period"),
		TimeZone: ctx.Query("tz"),
	}
}

// GetCategoryBreakdown handles GET /analytics/breakdown requests.
func (c *AnalyticsController) GetCategoryBreakdown(ctx *gin.Context) {
	output, err := c.getCategoryBreakdownUseCase.Execute(ctx.Request.Context(), periodInput(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse[*analytics.GetCategoryBreakdownOutput]{Data: output})
}

// GetTimeSeries handles GET /analytics/series requests.
func (c *AnalyticsController) GetTimeSeries(ctx *gin.Context) {
	output, err := c.getTimeSeriesUseCase.Execute(ctx.Request.Context(), periodInput(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse[*analytics.GetTimeSeriesOutput]{Data: output})
}

// GetSpendingStats handles GET /analytics/stats requests.
func (c *AnalyticsController) GetSpendingStats(ctx *gin.Context) {
	output, err := c.getSpendingStatsUseCase.Execute(ctx.Request.Context(), periodInput(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse[*analytics.GetSpendingStatsOutput]{Data: output})
}

// GetPeriodTransactions handles GET /analytics/transactions requests.
func (c *AnalyticsController) GetPeriodTransactions(ctx *gin.Context) {
	output, err := c.getPeriodTransactionsUseCase.Execute(ctx.Request.Context(), periodInput(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse[dto.PeriodTransactionsResponse]{Data: dto.ToPeriodTransactionsResponse(output)})
}

// GetSpendingInsight handles GET /analytics/insight requests.
func (c *AnalyticsController) GetSpendingInsight(ctx *gin.Context) {
	output, err := c.getSpendingInsightUseCase.Execute(ctx.Request.Context(), ctx.Param("user_id"), ctx.Query("tz"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse[*analytics.SpendingInsight]{Data: output})
}
