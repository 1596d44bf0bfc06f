// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
	aiAvailable     func() bool
	currentModel    func() string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Assistant string `json:"assistant"` // "ai" or "fallback"
	Model     string `json:"model,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// aiAvailable and currentModel may be nil.
func NewHealthController(dbHealthChecker func() bool, aiAvailable func() bool, currentModel func() string) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
		aiAvailable:     aiAvailable,
		currentModel:    currentModel,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	}

	response := HealthResponse{
		Status:    "ok",
		Database:  dbStatus,
		Assistant: "fallback",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.aiAvailable != nil && h.aiAvailable() {
		response.Assistant = "ai"
		if h.currentModel != nil {
			response.Model = h.currentModel()
		}
	}

	c.JSON(http.StatusOK, response)
}
