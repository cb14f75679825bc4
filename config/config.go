package config

import (
	"os"
	"strconv"
	"strings"
)

// Supported LLM providers
const (
	ProviderOpenAI = "openai"
	ProviderVertex = "vertex"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port      string
	Debug     bool
	LogLevel  string
	LogFormat string

	// LLM provider selection
	LLMProvider string

	// OpenAI-compatible API
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	AnalysisModel    string
	StructuringModel string
	VisionModel      string

	// Google Cloud / Vertex AI
	ProjectID             string
	Location              string
	GeminiModel           string
	GoogleCredentialsFile string

	// Timeouts
	HTTPTimeoutSeconds int

	// Uploads and request limits
	UploadDir     string
	MaxUploadMB   int
	MaxBodyMB     int
	MinTextLength int

	// HTTP surface
	AllowedOrigins     []string
	TrustedProxies     []string
	RateLimitPerMinute int

	// Reference data
	PositionsFile string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:      getEnv("PORT", "3001"),
		Debug:     getEnvBool("DEBUG", false),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		LLMProvider: strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),

		// OpenAI-compatible API
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		AnalysisModel:    getEnv("ANALYSIS_MODEL", "gpt-4o-mini"),
		StructuringModel: getEnv("STRUCTURING_MODEL", "gpt-4o"),
		VisionModel:      getEnv("VISION_MODEL", "gpt-4o"),

		// Google Cloud
		ProjectID:             getEnv("PROJECT_ID", ""),
		Location:              getEnv("LOCATION", "us-central1"),
		GeminiModel:           getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GoogleCredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),

		HTTPTimeoutSeconds: getEnvInt("LLM_TIMEOUT_SECONDS", 120),

		// Limits
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 10),
		MaxBodyMB:     getEnvInt("MAX_BODY_MB", 50),
		MinTextLength: getEnvInt("MIN_TEXT_LENGTH", 50),

		AllowedOrigins:     getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		TrustedProxies:     getEnvList("TRUSTED_PROXIES", nil),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),

		PositionsFile: getEnv("POSITIONS_FILE", ""),
	}

	return cfg
}

// Validate rejects settings the server cannot start with.
// A missing LLM credential is not an error here: requests that need the
// provider fail individually with a "not configured" message.
func (c *Config) Validate() error {
	if c.LLMProvider != ProviderOpenAI && c.LLMProvider != ProviderVertex {
		return &ConfigError{Field: "LLM_PROVIDER", Message: "LLM_PROVIDER must be \"openai\" or \"vertex\""}
	}
	if c.Port == "" {
		return &ConfigError{Field: "PORT", Message: "PORT must not be empty"}
	}
	if c.MaxUploadMB <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_MB", Message: "MAX_UPLOAD_MB must be positive"}
	}
	if c.MaxBodyMB <= 0 {
		return &ConfigError{Field: "MAX_BODY_MB", Message: "MAX_BODY_MB must be positive"}
	}
	if c.MinTextLength < 0 {
		return &ConfigError{Field: "MIN_TEXT_LENGTH", Message: "MIN_TEXT_LENGTH must not be negative"}
	}
	if c.HTTPTimeoutSeconds <= 0 {
		return &ConfigError{Field: "LLM_TIMEOUT_SECONDS", Message: "LLM_TIMEOUT_SECONDS must be positive"}
	}
	if c.RateLimitPerMinute <= 0 {
		return &ConfigError{Field: "RATE_LIMIT_PER_MINUTE", Message: "RATE_LIMIT_PER_MINUTE must be positive"}
	}
	if c.UploadDir == "" {
		return &ConfigError{Field: "UPLOAD_DIR", Message: "UPLOAD_DIR must not be empty"}
	}
	return nil
}

// Models returns the model names used for gap analysis, structuring and
// image transcription. Vertex AI serves all three from one Gemini model.
func (c *Config) Models() (analysis, structuring, vision string) {
	if c.LLMProvider == ProviderVertex {
		return c.GeminiModel, c.GeminiModel, c.GeminiModel
	}
	return c.AnalysisModel, c.StructuringModel, c.VisionModel
}

// MaxUploadBytes returns the upload ceiling in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// MaxBodyBytes returns the JSON body ceiling in bytes
func (c *Config) MaxBodyBytes() int64 {
	return int64(c.MaxBodyMB) << 20
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
