// Package llm defines the chat-model capability shared by the analysis,
// structuring and image transcription paths, plus the provider error taxonomy.
package llm

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyResponse is returned when the model replied with no text.
var ErrEmptyResponse = errors.New("llm: empty response from model")

// Image is an inline image attached to a prompt.
type Image struct {
	MIMEType string
	Data     []byte
}

// Request is one single-turn chat completion.
type Request struct {
	System      string
	Prompt      string
	Images      []Image
	Model       string
	JSON        bool
	Temperature *float32
	MaxTokens   int
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
type ChatModel interface {
	// Generate runs one completion and returns the reply text.
	Generate(ctx context.Context, req Request) (string, error)

	// Provider is the human-readable provider name used in error messages.
	Provider() string

	// Configured reports whether credentials are present.
	Configured() bool
}

// Check returns a *ConfigurationError when m is missing or lacks
// credentials. Models can name the missing setting by implementing
// MissingSetting() string; "API key" is assumed otherwise.
func Check(m ChatModel) error {
	if m == nil {
		return &ConfigurationError{Provider: "LLM", Setting: "provider"}
	}
	if m.Configured() {
		return nil
	}
	setting := "API key"
	if s, ok := m.(interface{ MissingSetting() string }); ok {
		setting = s.MissingSetting()
	}
	return &ConfigurationError{Provider: m.Provider(), Setting: setting}
}

// Pinger is implemented by models that can confirm their credentials with
// a cheap provider call.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe runs Check and then, when m implements Pinger, a live call to the
// provider.
func Probe(ctx context.Context, m ChatModel) error {
	if err := Check(m); err != nil {
		return err
	}
	if p, ok := m.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Temperature returns a pointer for Request.Temperature.
func Temperature(t float32) *float32 {
	return &t
}

// CleanJSON strips markdown code fences some models wrap JSON replies in.
func CleanJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
