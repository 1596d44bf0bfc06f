// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/glaze-finance/backend/internal/integration/entrypoint/controller"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	analyticsController   *controller.AnalyticsController
	insightController     *controller.InsightController
	transactionController *controller.TransactionController
	walletController      *controller.WalletController
	assistantController   *controller.AssistantController
	assistantRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
// Nil controllers leave their routes unregistered.
func NewRouter(
	healthController *controller.HealthController,
	analyticsController *controller.AnalyticsController,
	insightController *controller.InsightController,
	transactionController *controller.TransactionController,
	walletController *controller.WalletController,
	assistantController *controller.AssistantController,
	assistantRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		analyticsController:   analyticsController,
		insightController:     insightController,
		transactionController: transactionController,
		walletController:      walletController,
		assistantController:   assistantController,
		assistantRateLimiter:  assistantRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every resource is scoped by user.
func (r *Router) setupAPIRoutes() {
	user := r.engine.Group("/api/v1/users/:user_id")
	{
		if r.analyticsController != nil {
			analytics := user.Group("/analytics")
			{
				analytics.GET("/breakdown", r.analyticsController.GetCategoryBreakdown)
				analytics.GET("/series", r.analyticsController.GetTimeSeries)
				analytics.GET("/stats", r.analyticsController.GetSpendingStats)
				analytics.GET("/transactions", r.analyticsController.GetPeriodTransactions)
				analytics.GET("/insight", r.analyticsController.GetSpendingInsight)
			}
		}

		if r.insightController != nil {
			user.GET("/insights/daily", r.insightController.GetDaily)
		}

		if r.transactionController != nil {
			transactions := user.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.walletController != nil {
			wallets := user.Group("/wallets")
			{
				wallets.GET("", r.walletController.List)
				wallets.POST("", r.walletController.Create)
			}
		}

		// Assistant routes may call the language model, so they are rate limited
		if r.assistantController != nil {
			assistant := user.Group("/assistant")
			if r.assistantRateLimiter != nil {
				assistant.Use(r.assistantRateLimiter.Middleware())
			}
			{
				assistant.POST("/parse", r.assistantController.Parse)
				assistant.POST("/chat", r.assistantController.Chat)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
