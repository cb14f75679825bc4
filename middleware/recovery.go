package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/pivot/backend/logger"
	"github.com/pivot/backend/models"
)

// Recovery middleware recovers from panics, logs the stack and answers
// with the standard error envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
					Success: false,
					Error:   "Internal server error",
					Details: "request_id=" + GetRequestID(c),
				})
			}
		}()

		c.Next()
	}
}
