package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivot/backend/llm"
	"github.com/pivot/backend/llm/llmtest"
)

func TestImageExtract(t *testing.T) {
	model := &llmtest.Model{Reply: "  Jane Doe\nEngineer  "}
	img := NewImage(model, "gpt-4o")

	text, err := img.Extract(context.Background(), &Source{Data: []byte{0x89, 'P', 'N', 'G'}, MIMEType: MIMEPNG})

	require.NoError(t, err)
	assert.Equal(t, "  Jane Doe\nEngineer  ", text, "model output is returned unmodified")

	reqs := model.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "gpt-4o", reqs[0].Model)
	assert.Equal(t, visionMaxTokens, reqs[0].MaxTokens)
	assert.Contains(t, reqs[0].Prompt, "Extract all text from this resume image")
	require.Len(t, reqs[0].Images, 1)
	assert.Equal(t, MIMEPNG, reqs[0].Images[0].MIMEType)
}

func TestImageExtractNotConfigured(t *testing.T) {
	model := &llmtest.Model{Name: "OpenAI", Unconfigured: true}

	_, err := NewImage(model, "gpt-4o").Extract(context.Background(), &Source{MIMEType: MIMEJPEG})

	require.ErrorIs(t, err, llm.ErrNotConfigured)
	var cfgErr *llm.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "OpenAI API key not configured", cfgErr.Error())
}

func TestImageExtractNilModel(t *testing.T) {
	_, err := NewImage(nil, "").Extract(context.Background(), &Source{MIMEType: MIMEJPEG})
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestImageExtractEmptyReply(t *testing.T) {
	model := &llmtest.Model{Err: llm.ErrEmptyResponse}

	text, err := NewImage(model, "gpt-4o").Extract(context.Background(), &Source{MIMEType: MIMEPNG})

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestImageExtractProviderError(t *testing.T) {
	model := &llmtest.Model{Err: &llm.ProviderError{Provider: "OpenAI", Kind: llm.KindQuota, Status: 429}}

	_, err := NewImage(model, "gpt-4o").Extract(context.Background(), &Source{MIMEType: MIMEPNG})

	var perr *llm.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, llm.KindQuota, perr.Kind)
}
