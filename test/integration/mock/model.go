package mock

import (
	"context"
	"errors"
	"sync"

	"github.com/glaze-finance/backend/internal/application/adapter"
)

// LanguageModel is a scripted language model. Replies are consumed in order;
// once they run out the last one is repeated.
type LanguageModel struct {
	mu        sync.Mutex
	available bool
	replies   []reply
	requests  []adapter.GenerationRequest
}

type reply struct {
	text string
	err  error
}

func NewLanguageModel() *LanguageModel {
	return &LanguageModel{}
}

// Reset makes the model unavailable and forgets replies and recorded requests.
func (m *LanguageModel) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = false
	m.replies = nil
	m.requests = nil
}

// SetAvailable toggles the configured state reported by IsAvailable.
func (m *LanguageModel) SetAvailable(available bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = available
}

// AddReply queues a successful reply and marks the model available.
func (m *LanguageModel) AddReply(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = true
	m.replies = append(m.replies, reply{text: text})
}

// AddError queues a failed call and marks the model available.
func (m *LanguageModel) AddError(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = true
	m.replies = append(m.replies, reply{err: errors.New(message)})
}

// Calls returns how many requests reached the model.
func (m *LanguageModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// LastRequest returns the most recent request, or nil.
func (m *LanguageModel) LastRequest() *adapter.GenerationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	last := m.requests[len(m.requests)-1]
	return &last
}

func (m *LanguageModel) Generate(ctx context.Context, request *adapter.GenerationRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	index := len(m.requests)
	m.requests = append(m.requests, *request)

	if len(m.replies) == 0 {
		return "", errors.New("no scripted reply")
	}
	if index >= len(m.replies) {
		index = len(m.replies) - 1
	}
	r := m.replies[index]
	return r.text, r.err
}

func (m *LanguageModel) IsAvailable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}
