// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/glaze-finance/backend/internal/domain/error"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/dto"
)

const (
	defaultAssistantCalls  = 30
	defaultAssistantWindow = time.Minute
)

// clientWindow counts one client's assistant calls in the current fixed window.
type clientWindow struct {
	calls   int
	expires time.Time
}

// RateLimiter caps assistant calls per client IP. Every parse or chat request
// may reach the language model, whose quota is shared by all users, so the cap
// keeps one client from exhausting it.
//
// Windows that have run out are swept at most once per window length, which
// bounds the map by the number of clients seen in the last two windows.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientWindow
	limit     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter creates a limiter allowing limit calls per window and client.
// Non-positive values fall back to 30 calls per minute.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = defaultAssistantCalls
	}
	if window <= 0 {
		window = defaultAssistantWindow
	}
	return &RateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Middleware rejects over-budget clients with 429 before the handler runs.
// The limiter is bypassed in the test and E2E environments.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		client := c.ClientIP()
		if client == "" {
			client = c.Request.RemoteAddr
		}

		if !rl.take(client) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many assistant requests. Please try again later.",
				Code:  string(domainerror.ErrCodeTooManyRequests),
			})
			return
		}

		c.Next()
	}
}

// take spends one call from the client's budget and reports whether it was available.
func (rl *RateLimiter) take(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	w, ok := rl.clients[client]
	if !ok || now.After(w.expires) {
		rl.clients[client] = &clientWindow{calls: 1, expires: now.Add(rl.window)}
		return true
	}

	if w.calls >= rl.limit {
		return false
	}
	w.calls++
	return true
}

// sweep drops run-out windows. Callers hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.window {
		return
	}
	rl.lastSweep = now

	for client, w := range rl.clients {
		if now.After(w.expires) {
			delete(rl.clients, client)
		}
	}
}
