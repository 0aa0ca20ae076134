package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is one queued reply for a MockProvider.
type MockReply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockJSON marshals v into a reply. It panics on values that cannot be
// marshalled, which only happens with programmer error in tests.
func MockJSON(v any) MockReply {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return MockReply{Content: b, Usage: newUsage(100, 200)}
}

// MockProvider replays queued replies in order and records every request.
// Replies still go through schema validation so tests see the same errors
// a real provider would produce.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply
	calls   []Request
}

func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.calls = append(m.calls, req)
	if len(m.replies) == 0 {
		m.mu.Unlock()
		return nil, &ErrProviderUnavailable{}
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]
	m.mu.Unlock()

	if reply.Err != nil {
		return nil, reply.Err
	}
	return finish(req, reply.Content, reply.Usage, "mock", "end")
}

func (m *MockProvider) ModelID() string { return "mock" }

// Queue appends replies.
func (m *MockProvider) Queue(replies ...MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, replies...)
}

// Calls returns a copy of the recorded requests.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}

// Pending is the number of queued replies not yet consumed.
func (m *MockProvider) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.replies)
}
