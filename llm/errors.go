package llm

import (
	"errors"
	"fmt"
)

// ErrNotConfigured matches any *ConfigurationError.
var ErrNotConfigured = errors.New("llm: provider not configured")

// ConfigurationError reports a missing provider credential.
type ConfigurationError struct {
	Provider string
	Setting  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s %s not configured", e.Provider, e.Setting)
}

// Is lets errors.Is(err, ErrNotConfigured) match.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrNotConfigured
}

// Kind classifies provider failures that have a dedicated user message.
type Kind int

const (
	KindUnknown Kind = iota
	KindQuota
	KindInvalidCredential
	KindInvalidInput
	KindModelUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindQuota:
		return "quota_exceeded"
	case KindInvalidCredential:
		return "invalid_credential"
	case KindInvalidInput:
		return "invalid_input"
	case KindModelUnavailable:
		return "model_unavailable"
	default:
		return "unknown"
	}
}

// ProviderError is a failed call to the LLM provider.
type ProviderError struct {
	Provider string
	Kind     Kind
	Status   int
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %s", e.Provider, e.Kind, e.Status, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Kind, msg)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// UserMessage returns the remapped human-readable message, or "" for
// KindUnknown so callers fall back to their own generic message.
func (e *ProviderError) UserMessage() string {
	switch e.Kind {
	case KindQuota:
		return fmt.Sprintf("%s API quota exceeded. Please check your API usage and billing.", e.Provider)
	case KindInvalidCredential:
		return fmt.Sprintf("Invalid %s API key. Please check your configuration.", e.Provider)
	case KindInvalidInput:
		return "Invalid file format or size. Please try a different file."
	case KindModelUnavailable:
		return fmt.Sprintf("Model not available. Please check %s API status.", e.Provider)
	default:
		return ""
	}
}
