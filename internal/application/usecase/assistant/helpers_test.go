package assistant

import (
	"context"
	"sync"
	"time"

	"github.com/glaze-finance/backend/internal/application/adapter"
	"github.com/glaze-finance/backend/internal/domain/entity"
)

// fakeClock advances only when something sleeps on it.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func (c *fakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

func newTestGateway(clock *fakeClock, models ...string) *Gateway {
	return NewGateway(GatewayConfig{
		Models:      models,
		MinInterval: 2 * time.Second,
		MaxRetries:  2,
		BackoffBase: 3 * time.Second,
	}, WithClock(clock.Now), WithSleeper(clock.Sleep))
}

type modelReply struct {
	text string
	err  error
}

// fakeModel replays canned replies; the last one repeats.
type fakeModel struct {
	available bool
	replies   []modelReply
	requests  []*adapter.GenerationRequest
}

func (m *fakeModel) IsAvailable() bool { return m.available }

func (m *fakeModel) Generate(_ context.Context, request *adapter.GenerationRequest) (string, error) {
	m.requests = append(m.requests, request)
	if len(m.replies) == 0 {
		return "", nil
	}
	idx := len(m.requests) - 1
	if idx >= len(m.replies) {
		idx = len(m.replies) - 1
	}
	return m.replies[idx].text, m.replies[idx].err
}

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	err          error
}

func (r *fakeTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }

func (r *fakeTransactionRepo) FindByID(context.Context, string) (*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) FindByUser(context.Context, string) ([]*entity.Transaction, error) {
	return r.transactions, r.err
}

func (r *fakeTransactionRepo) Delete(context.Context, string) error { return nil }

type fakeWalletRepo struct {
	wallets []*entity.Wallet
	err     error
}

func (r *fakeWalletRepo) Create(context.Context, *entity.Wallet) error { return nil }

func (r *fakeWalletRepo) FindByUser(context.Context, string) ([]*entity.Wallet, error) {
	return r.wallets, r.err
}

func (r *fakeWalletRepo) FindByName(context.Context, string, string) (*entity.Wallet, error) {
	return nil, nil
}

func (r *fakeWalletRepo) AdjustBalance(context.Context, string, int64) error { return nil }
