// Package llmtest provides a scriptable llm.ChatModel for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/pivot/backend/llm"
)

var _ llm.ChatModel = (*Model)(nil)

// Model is a fake chat model. Respond decides the reply for each request;
// when nil, Reply and Err are returned.
type Model struct {
	Name         string
	Unconfigured bool
	Reply        string
	Err          error
	Respond      func(req llm.Request) (string, error)
	PingErr      error

	mu       sync.Mutex
	requests []llm.Request
}

// Generate records req and returns the scripted reply.
func (m *Model) Generate(_ context.Context, req llm.Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.Unconfigured {
		return "", &llm.ConfigurationError{Provider: m.Provider(), Setting: "API key"}
	}
	if m.Respond != nil {
		return m.Respond(req)
	}
	return m.Reply, m.Err
}

// Provider returns Name, defaulting to "Fake".
func (m *Model) Provider() string {
	if m.Name == "" {
		return "Fake"
	}
	return m.Name
}

// Configured reports the inverse of Unconfigured.
func (m *Model) Configured() bool {
	return !m.Unconfigured
}

// Ping returns PingErr.
func (m *Model) Ping(context.Context) error {
	return m.PingErr
}

// Calls returns the number of Generate calls.
func (m *Model) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Requests returns a copy of the recorded requests.
func (m *Model) Requests() []llm.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]llm.Request(nil), m.requests...)
}
