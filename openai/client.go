// Package openai is a chat completions client for OpenAI and
// OpenAI-compatible endpoints.
package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pivot/backend/config"
	"github.com/pivot/backend/llm"
	"github.com/pivot/backend/utils"
)

// ProviderName is used in user-facing error messages
const ProviderName = "OpenAI"

// maxErrorBody caps how much of an error response is read
const maxErrorBody = 64 << 10

var _ llm.ChatModel = (*Client)(nil)

// Client is a minimal OpenAI chat completions client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client from application config
func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	return New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, utils.NewHTTPClient(timeout, ""))
}

// New creates a client against baseURL. An empty apiKey yields a client
// that reports itself unconfigured.
func New(apiKey, baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if httpClient == nil {
		httpClient = utils.NewHTTPClient(120*time.Second, "")
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Provider() string { return ProviderName }

func (c *Client) Configured() bool { return c.apiKey != "" }

type message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionsRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    *float32        `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// Generate sends one chat completion and returns the first choice's text.
func (c *Client) Generate(ctx context.Context, req llm.Request) (string, error) {
	if !c.Configured() {
		return "", &llm.ConfigurationError{Provider: ProviderName, Setting: "API key"}
	}

	data, err := json.Marshal(buildRequest(req))
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	endpoint := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &llm.ProviderError{Provider: ProviderName, Kind: llm.KindUnknown, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", decodeError(resp)
	}

	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &llm.ProviderError{Provider: ProviderName, Status: resp.StatusCode, Message: "malformed response body", Err: err}
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", llm.ErrEmptyResponse
	}
	return out.Choices[0].Message.Content, nil
}

// Ping lists the models visible to the API key, which fails fast on a
// revoked or mistyped key.
func (c *Client) Ping(ctx context.Context) error {
	if !c.Configured() {
		return llm.Check(c)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("build models request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &llm.ProviderError{Provider: ProviderName, Kind: llm.KindUnknown, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	return nil
}

func buildRequest(req llm.Request) chatCompletionsRequest {
	var messages []message
	if req.System != "" {
		messages = append(messages, message{Role: "system", Content: req.System})
	}

	if len(req.Images) == 0 {
		messages = append(messages, message{Role: "user", Content: req.Prompt})
	} else {
		parts := []contentPart{{Type: "text", Text: req.Prompt}}
		for _, img := range req.Images {
			parts = append(parts, contentPart{
				Type:     "image_url",
				ImageURL: &imageURL{URL: DataURL(img)},
			})
		}
		messages = append(messages, message{Role: "user", Content: parts})
	}

	body := chatCompletionsRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSON {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	return body
}

// DataURL encodes an image as a base64 data URL
func DataURL(img llm.Image) string {
	mimeType := img.MIMEType
	if mimeType == "image/jpg" {
		mimeType = "image/jpeg"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	perr := &llm.ProviderError{Provider: ProviderName, Status: resp.StatusCode}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		perr.Message = env.Error.Message
		if code, ok := env.Error.Code.(string); ok {
			perr.Code = code
		}
	} else {
		perr.Message = strings.TrimSpace(string(body))
	}

	perr.Kind = classify(resp.StatusCode, perr.Code, perr.Message)
	return perr
}

func classify(status int, code, message string) llm.Kind {
	switch {
	case code == "insufficient_quota":
		return llm.KindQuota
	case code == "invalid_api_key" || status == http.StatusUnauthorized:
		return llm.KindInvalidCredential
	case code == "model_not_found" || status == http.StatusNotFound:
		return llm.KindModelUnavailable
	case status == http.StatusBadRequest || status == http.StatusRequestEntityTooLarge:
		return llm.KindInvalidInput
	case strings.Contains(strings.ToLower(message), "model"):
		return llm.KindModelUnavailable
	default:
		return llm.KindUnknown
	}
}
