package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pivot/backend/agent"
	"github.com/pivot/backend/catalog"
	"github.com/pivot/backend/export"
	"github.com/pivot/backend/extractor"
	"github.com/pivot/backend/llm"
	"github.com/pivot/backend/logger"
	"github.com/pivot/backend/models"
	"github.com/pivot/backend/resume"
	"github.com/pivot/backend/storage"
)

// User-facing messages
const (
	MsgNoFile          = "No resume file uploaded"
	MsgFileType        = "Only PDF, DOC, DOCX, ODT, PNG, and JPG files are allowed"
	MsgTargetRequired  = "Target position is required"
	MsgTextTooShort    = "Resume appears to be empty or too short. Please upload a valid resume."
	MsgExportFields    = "Resume data and format are required"
	MsgExportFormat    = "Unsupported export format"
	MsgCorrupt         = "Failed to parse resume. Please ensure the file is not corrupted."
	MsgAnalysisFailed  = "Failed to analyze resume. Please try again."
	MsgParseFailed     = "Failed to parse resume structure"
	MsgExportFailed    = "Failed to export resume"
	MsgInvalidBody     = "Invalid request body"
	MsgBodyTooLarge    = "Request body too large"
	MsgTimeout         = "The AI provider did not respond in time. Please try again."
	MsgPositionMissing = "Position not found"
)

// ErrorMapper turns pipeline errors into an HTTP status and a message that
// is safe to show to users. Internal error text never leaks except for
// configuration errors, which name the missing setting.
type ErrorMapper struct {
	MaxUploadBytes int64
}

// TooLargeMessage reports the upload ceiling in MB
func (m ErrorMapper) TooLargeMessage() string {
	return fmt.Sprintf("File too large. Maximum size is %dMB", m.MaxUploadBytes>>20)
}

// Classify maps err. fallback is used for errors with no dedicated message.
func (m ErrorMapper) Classify(err error, fallback string) (int, string) {
	var (
		cfgErr      *llm.ConfigurationError
		providerErr *llm.ProviderError
		maxBytesErr *http.MaxBytesError
	)

	switch {
	// Request validation
	case errors.Is(err, resume.ErrTargetRequired):
		return http.StatusBadRequest, MsgTargetRequired
	case errors.Is(err, agent.ErrTextTooShort):
		return http.StatusBadRequest, MsgTextTooShort
	case errors.Is(err, storage.ErrUnsupportedFileType):
		return http.StatusBadRequest, MsgFileType
	case errors.Is(err, storage.ErrFileTooLarge), errors.As(err, &maxBytesErr):
		return http.StatusBadRequest, m.TooLargeMessage()
	case errors.Is(err, export.ErrUnsupportedFormat):
		return http.StatusBadRequest, MsgExportFormat
	case errors.Is(err, export.ErrNoData):
		return http.StatusBadRequest, MsgExportFields
	case errors.Is(err, catalog.ErrPositionNotFound):
		return http.StatusNotFound, MsgPositionMissing

	// Configuration
	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError, cfgErr.Error()

	// Extraction
	case errors.Is(err, extractor.ErrUnsupportedFormat):
		return http.StatusBadRequest, MsgFileType
	case errors.Is(err, extractor.ErrCorruptDocument):
		return http.StatusInternalServerError, MsgCorrupt

	// Provider
	case errors.As(err, &providerErr) && providerErr.Kind != llm.KindUnknown:
		return http.StatusInternalServerError, providerErr.UserMessage()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, MsgTimeout

	// Services
	case errors.Is(err, resume.ErrAnalysisFailed):
		return http.StatusInternalServerError, MsgAnalysisFailed
	case errors.Is(err, resume.ErrParse):
		return http.StatusInternalServerError, MsgParseFailed
	}

	return http.StatusInternalServerError, fallback
}

// respondError logs err and writes the error envelope
func (m ErrorMapper) respondError(c *gin.Context, err error, fallback string) {
	status, msg := m.Classify(err, fallback)

	log := logger.WithContext(c.Request.Context())
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "status", status, "error", err)
	} else {
		log.Warn("request rejected", "status", status, "error", err)
	}

	_ = c.Error(err)
	abortWithError(c, status, msg)
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Success: false,
		Error:   msg,
	})
}
