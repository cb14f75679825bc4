package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pivot/backend/logger"
	"github.com/pivot/backend/models"
)

// timestampLayout matches JavaScript's toISOString
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running. Never touches the LLM provider.
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Message:   "Pivot API is running",
		Timestamp: time.Now().UTC().Format(timestampLayout),
	})
}

// ReadinessChecker reports whether the LLM provider can be used
type ReadinessChecker interface {
	Ready() error
	Verify(ctx context.Context) error
	Provider() string
}

// Ready reports whether an LLM provider is configured
// @Summary Readiness check
// @Description 200 when the configured LLM provider has credentials, 503 otherwise. With deep=true the credentials are also confirmed by a live provider call.
// @Tags System
// @Produce json
// @Param deep query bool false "Confirm credentials with the provider"
// @Success 200 {object} models.ReadyResponse "Provider configured"
// @Failure 503 {object} models.ReadyResponse "Provider not configured"
// @Router /ready [get]
func Ready(checker ReadinessChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := checker.Ready()
		if err == nil && c.Query("deep") == "true" {
			err = checker.Verify(c.Request.Context())
		}
		if err != nil {
			_, msg := ErrorMapper{}.Classify(err, "LLM provider check failed")
			logger.Warn(c.Request.Context(), "readiness check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, models.ReadyResponse{
				Status:   "unavailable",
				Provider: checker.Provider(),
				Message:  msg,
			})
			return
		}
		c.JSON(http.StatusOK, models.ReadyResponse{
			Status:   "ready",
			Provider: checker.Provider(),
		})
	}
}
