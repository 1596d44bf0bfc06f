package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	domainerror "github.com/glaze-finance/backend/internal/domain/error"
)

var (
	errRateLimited     = &googleapi.Error{Code: 429, Message: "quota exceeded"}
	errModelNotFound   = &googleapi.Error{Code: 404, Message: "model not found"}
	errSomethingBroken = errors.New("something broke")
)

// scriptedCall returns the errors in order, then succeeds.
func scriptedCall(models *[]string, errs ...error) func(context.Context, string) error {
	return func(_ context.Context, model string) error {
		*models = append(*models, model)
		if len(*models) <= len(errs) {
			return errs[len(*models)-1]
		}
		return nil
	}
}

func TestGateway_ModelErrorSwitchesWithoutUsingBudget(t *testing.T) {
	clock := newFakeClock()
	gateway := newTestGateway(clock, "primary", "secondary")

	var models []string
	err := gateway.Execute(context.Background(), "test", scriptedCall(&models, errModelNotFound))

	require.NoError(t, err)
	assert.Equal(t, []string{"primary", "secondary"}, models)
	assert.Equal(t, "secondary", gateway.CurrentModel())
	// Only the rate gate waited; no backoff.
	assert.Equal(t, []time.Duration{2 * time.Second}, clock.Sleeps())
}

func TestGateway_RateLimitSwitchesModelFirst(t *testing.T) {
	clock := newFakeClock()
	gateway := newTestGateway(clock, "primary", "secondary")

	var models []string
	err := gateway.Execute(context.Background(), "test", scriptedCall(&models, errRateLimited, errRateLimited, errRateLimited))

	require.NoError(t, err)
	assert.Equal(t, []string{"primary", "secondary", "secondary", "secondary"}, models)
	assert.Equal(t, []time.Duration{2 * time.Second, 3 * time.Second, 6 * time.Second}, clock.Sleeps())
}

func TestGateway_RateLimitOnLastModelExhaustsBudget(t *testing.T) {
	clock := newFakeClock()
	gateway := newTestGateway(clock, "only")

	calls := 0
	err := gateway.Execute(context.Background(), "test", func(context.Context, string) error {
		calls++
		return errRateLimited
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerror.ErrAIRetriesExhausted)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{3 * time.Second, 6 * time.Second}, clock.Sleeps())

	var assistantErr *domainerror.AssistantError
	require.ErrorAs(t, err, &assistantErr)
	assert.Equal(t, domainerror.ErrCodeAIRetriesExhausted, assistantErr.Code)
}

func TestGateway_ModelErrorOnLastModelIsTerminal(t *testing.T) {
	clock := newFakeClock()
	gateway := newTestGateway(clock, "only")

	var models []string
	err := gateway.Execute(context.Background(), "test", scriptedCall(&models, errModelNotFound))

	assert.ErrorIs(t, err, domainerror.ErrAIModelUnavailable)
	assert.Len(t, models, 1)
	assert.Empty(t, clock.Sleeps())
}

func TestGateway_UnknownErrorIsNotRetried(t *testing.T) {
	clock := newFakeClock()
	gateway := newTestGateway(clock, "primary", "secondary")

	var models []string
	err := gateway.Execute(context.Background(), "test", scriptedCall(&models, errSomethingBroken))

	assert.ErrorIs(t, err, domainerror.ErrAIUnknown)
	assert.Equal(t, []string{"primary"}, models)
	assert.Equal(t, "primary", gateway.CurrentModel())
}

func TestGateway_MalformedResponseRetriesSameModel(t *testing.T) {
	clock := newFakeClock()
	gateway := newTestGateway(clock, "primary", "secondary")

	var models []string
	err := gateway.Execute(context.Background(), "test", scriptedCall(&models, malformed(errors.New("bad json"))))

	require.NoError(t, err)
	assert.Equal(t, []string{"primary", "primary"}, models)
	assert.Equal(t, []time.Duration{3 * time.Second}, clock.Sleeps())
}

func TestGateway_RateGateSpacesConsecutiveCalls(t *testing.T) {
	clock := newFakeClock()
	gateway := newTestGateway(clock, "primary")
	noop := func(context.Context, string) error { return nil }

	require.NoError(t, gateway.Execute(context.Background(), "first", noop))
	clock.Advance(500 * time.Millisecond)
	require.NoError(t, gateway.Execute(context.Background(), "second", noop))
	clock.Advance(5 * time.Second)
	require.NoError(t, gateway.Execute(context.Background(), "third", noop))

	assert.Equal(t, []time.Duration{1500 * time.Millisecond}, clock.Sleeps())
}

func TestGateway_ModelCursorIsShared(t *testing.T) {
	clock := newFakeClock()
	gateway := newTestGateway(clock, "primary", "secondary")

	var first []string
	require.NoError(t, gateway.Execute(context.Background(), "parse", scriptedCall(&first, errModelNotFound)))

	var second []string
	require.NoError(t, gateway.Execute(context.Background(), "chat", scriptedCall(&second)))

	assert.Equal(t, []string{"secondary"}, second)
}

func TestGateway_NoModels(t *testing.T) {
	gateway := NewGateway(GatewayConfig{})

	err := gateway.Execute(context.Background(), "test", func(context.Context, string) error { return nil })

	assert.ErrorIs(t, err, domainerror.ErrAINotConfigured)
}

func TestGateway_CanceledContextStopsBackoff(t *testing.T) {
	clock := newFakeClock()
	gateway := newTestGateway(clock, "only")
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := gateway.Execute(ctx, "test", func(context.Context, string) error {
		calls++
		cancel()
		return errRateLimited
	})

	assert.ErrorIs(t, err, domainerror.ErrAINetwork)
	assert.Equal(t, 1, calls)
}

func TestGateway_RequestTimeoutIsApplied(t *testing.T) {
	gateway := NewGateway(GatewayConfig{Models: []string{"m"}, RequestTimeout: time.Minute})

	err := gateway.Execute(context.Background(), "test", func(ctx context.Context, _ string) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return nil
	})

	require.NoError(t, err)
}

func TestDefaultGatewayConfig(t *testing.T) {
	cfg := DefaultGatewayConfig()

	assert.Equal(t, []string{"gemini-2.5-flash", "gemini-2.0-flash"}, cfg.Models)
	assert.Equal(t, 2*time.Second, cfg.MinInterval)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, 3*time.Second, cfg.BackoffBase)
}
