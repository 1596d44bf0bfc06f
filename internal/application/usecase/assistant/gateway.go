package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domainerror "github.com/glaze-finance/backend/internal/domain/error"
)

// GatewayConfig holds the request policy shared by every assistant operation.
type GatewayConfig struct {
	Models         []string      // Tried in order; the cursor only moves forward
	MinInterval    time.Duration // Minimum spacing between two dispatches
	MaxRetries     int           // Retries beyond the first attempt on the last model
	BackoffBase    time.Duration // Delay before retry n is BackoffBase * 2^n
	RequestTimeout time.Duration // Zero disables the per-call timeout
}

// DefaultGatewayConfig returns the policy used when nothing is configured.
func DefaultGatewayConfig() GatewayConfig {
	return GatewayConfig{
		Models:         []string{"gemini-2.5-flash", "gemini-2.0-flash"},
		MinInterval:    2 * time.Second,
		MaxRetries:     2,
		BackoffBase:    3 * time.Second,
		RequestTimeout: 30 * time.Second,
	}
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// GatewayOption customizes a Gateway.
type GatewayOption func(*Gateway)

// WithClock replaces the wall clock.
func WithClock(clock func() time.Time) GatewayOption {
	return func(g *Gateway) { g.clock = clock }
}

// WithSleeper replaces the timer-based sleeper.
func WithSleeper(sleep Sleeper) GatewayOption {
	return func(g *Gateway) { g.sleep = sleep }
}

// Gateway serializes language model calls behind one rate gate, walks the
// model fallback list and applies the retry budget. One Gateway is shared by
// extraction, chat and insights so they all respect the same spacing.
type Gateway struct {
	cfg   GatewayConfig
	clock func() time.Time
	sleep Sleeper

	// slot allows a single upstream request in flight.
	slot chan struct{}

	mu           sync.Mutex
	modelIndex   int
	lastDispatch time.Time
}

// NewGateway creates a new Gateway.
func NewGateway(cfg GatewayConfig, opts ...GatewayOption) *Gateway {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	g := &Gateway{
		cfg:   cfg,
		clock: time.Now,
		sleep: sleepContext,
		slot:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CurrentModel returns the model the next request will use.
func (g *Gateway) CurrentModel() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.cfg.Models) == 0 {
		return ""
	}
	return g.cfg.Models[g.modelIndex]
}

// Execute runs call until it succeeds or the policy gives up.
//   - Model or rate-limit errors move to the next model without using the budget.
//   - On the last model, rate-limit and malformed-response errors back off and retry.
//   - Anything else is returned at once.
//
// The returned error is always a *domainerror.AssistantError.
func (g *Gateway) Execute(ctx context.Context, operation string, call func(ctx context.Context, model string) error) error {
	if len(g.cfg.Models) == 0 {
		return domainerror.NewAssistantError(
			domainerror.ErrCodeAINotConfigured,
			"no language models configured",
			domainerror.ErrAINotConfigured,
		)
	}

	select {
	case g.slot <- struct{}{}:
	case <-ctx.Done():
		return classifyError(ctx.Err())
	}
	defer func() { <-g.slot }()

	for attempt := 0; ; {
		if err := g.waitForGate(ctx); err != nil {
			return classifyError(err)
		}

		model := g.CurrentModel()
		err := g.dispatch(ctx, model, call)
		if err == nil {
			return nil
		}

		classified := classifyError(err)

		if isModelSwitchable(classified) {
			if next, ok := g.advanceModel(); ok {
				slog.Warn("switching to fallback model",
					"operation", operation,
					"from_model", model,
					"to_model", next,
					"error", classified.Message)
				continue
			}
		}

		if !isRetryable(classified) {
			return classified
		}

		if attempt >= g.cfg.MaxRetries {
			slog.Warn("ai retries exhausted",
				"operation", operation,
				"model", model,
				"attempts", attempt+1,
				"error", classified.Message)
			return domainerror.NewAssistantError(
				domainerror.ErrCodeAIRetriesExhausted,
				fmt.Sprintf("%s gave up after %d attempts: %s", operation, attempt+1, classified.Message),
				domainerror.ErrAIRetriesExhausted,
			)
		}

		delay := g.backoff(attempt)
		slog.Warn("ai request failed, backing off",
			"operation", operation,
			"model", model,
			"attempt", attempt+1,
			"delay", delay,
			"error", classified.Message)

		if err := g.sleep(ctx, delay); err != nil {
			return classifyError(err)
		}
		attempt++
	}
}

func (g *Gateway) dispatch(ctx context.Context, model string, call func(ctx context.Context, model string) error) error {
	if g.cfg.RequestTimeout <= 0 {
		return call(ctx, model)
	}
	callCtx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()
	return call(callCtx, model)
}

// waitForGate sleeps until MinInterval has passed since the last dispatch,
// then records the new dispatch time.
func (g *Gateway) waitForGate(ctx context.Context) error {
	g.mu.Lock()
	var wait time.Duration
	if !g.lastDispatch.IsZero() {
		wait = g.cfg.MinInterval - g.clock().Sub(g.lastDispatch)
	}
	g.mu.Unlock()

	if wait > 0 {
		if err := g.sleep(ctx, wait); err != nil {
			return err
		}
	}

	g.mu.Lock()
	g.lastDispatch = g.clock()
	g.mu.Unlock()
	return nil
}

// advanceModel moves the cursor to the next model, if there is one.
func (g *Gateway) advanceModel() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.modelIndex >= len(g.cfg.Models)-1 {
		return "", false
	}
	g.modelIndex++
	return g.cfg.Models[g.modelIndex], true
}

func (g *Gateway) backoff(attempt int) time.Duration {
	return g.cfg.BackoffBase * time.Duration(1<<attempt)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
