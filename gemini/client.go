package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pivot/backend/config"
	"github.com/pivot/backend/llm"
)

// ProviderName is used in user-facing error messages
const ProviderName = "Vertex AI"

var _ llm.ChatModel = (*Client)(nil)

// Client wraps the Vertex AI Gemini client
type Client struct {
	client       *genai.Client
	projectID    string
	location     string
	defaultModel string
}

// NewClient creates a new Gemini client. Without PROJECT_ID the client is
// returned unconfigured and every Generate call fails with a configuration error.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	c := &Client{
		projectID:    cfg.ProjectID,
		location:     cfg.Location,
		defaultModel: cfg.GeminiModel,
	}
	if cfg.ProjectID == "" {
		return c, nil
	}

	var opts []option.ClientOption
	if cfg.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Client) Provider() string { return ProviderName }

func (c *Client) Configured() bool { return c.client != nil }

// MissingSetting names the setting reported when the client is unconfigured.
func (c *Client) MissingSetting() string { return "project" }

// Generate runs one GenerateContent call. Images are sent as inline blobs
// ahead of the text prompt.
func (c *Client) Generate(ctx context.Context, req llm.Request) (string, error) {
	if !c.Configured() {
		return "", llm.Check(c)
	}

	name := req.Model
	if name == "" {
		name = c.defaultModel
	}
	model := c.client.GenerativeModel(name)

	if req.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}
	if req.JSON {
		model.ResponseMIMEType = "application/json"
	}
	if req.Temperature != nil {
		model.SetTemperature(*req.Temperature)
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	parts := make([]genai.Part, 0, len(req.Images)+1)
	for _, img := range req.Images {
		parts = append(parts, genai.Blob{MIMEType: normalizeMIME(img.MIMEType), Data: img.Data})
	}
	parts = append(parts, genai.Text(req.Prompt))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", classifyError(err)
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", llm.ErrEmptyResponse
	}
	return text, nil
}

// Ping counts the tokens of a one-word prompt on the default model. It
// exercises credentials, project and model access without generating.
func (c *Client) Ping(ctx context.Context) error {
	if !c.Configured() {
		return llm.Check(c)
	}
	if _, err := c.client.GenerativeModel(c.defaultModel).CountTokens(ctx, genai.Text("ping")); err != nil {
		return classifyError(err)
	}
	return nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func normalizeMIME(mimeType string) string {
	if mimeType == "image/jpg" {
		return "image/jpeg"
	}
	return mimeType
}

func classifyError(err error) error {
	perr := &llm.ProviderError{Provider: ProviderName, Kind: llm.KindUnknown, Err: err}

	st, ok := status.FromError(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			perr.Message = "request cancelled or timed out"
		}
		return perr
	}

	perr.Code = st.Code().String()
	perr.Message = st.Message()
	switch st.Code() {
	case codes.ResourceExhausted:
		perr.Kind = llm.KindQuota
	case codes.PermissionDenied, codes.Unauthenticated:
		perr.Kind = llm.KindInvalidCredential
	case codes.InvalidArgument, codes.FailedPrecondition:
		perr.Kind = llm.KindInvalidInput
	case codes.NotFound, codes.Unavailable:
		perr.Kind = llm.KindModelUnavailable
	}
	return perr
}
