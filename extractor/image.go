package extractor

import (
	"context"
	"errors"
	"fmt"

	"github.com/pivot/backend/llm"
)

// visionPrompt asks the model for a verbatim transcription
const visionPrompt = "Extract all text from this resume image. Preserve the formatting and structure as much as possible. " +
	"Include all contact information, work experience, education, skills, and any other text visible in the image. " +
	"Return ONLY the extracted text, no additional commentary or explanation."

// visionMaxTokens bounds the transcription length
const visionMaxTokens = 4096

// Image transcribes résumé images through a vision-capable chat model.
type Image struct {
	model     llm.ChatModel
	modelName string
}

// NewImage creates an image extractor backed by model.
func NewImage(model llm.ChatModel, modelName string) *Image {
	return &Image{model: model, modelName: modelName}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (i *Image) SupportedMIMETypes() []string {
	return []string{MIMEPNG, MIMEJPEG, MIMEJPGAlt}
}

// Extract sends the image to the model and returns its reply unmodified.
// An unconfigured model fails with an llm.ConfigurationError. An empty
// reply yields empty text so the caller's length check rejects it.
func (i *Image) Extract(ctx context.Context, src *Source) (string, error) {
	if i.model == nil {
		return "", &llm.ConfigurationError{Provider: "LLM", Setting: "provider"}
	}

	text, err := i.model.Generate(ctx, llm.Request{
		Prompt:    visionPrompt,
		Model:     i.modelName,
		MaxTokens: visionMaxTokens,
		Images:    []llm.Image{{MIMEType: src.MIMEType, Data: src.Data}},
	})
	if errors.Is(err, llm.ErrEmptyResponse) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("transcribe image: %w", err)
	}
	return text, nil
}
