package middleware

import (
	"log/slog"
	"net/http"

	"hotel-reservation-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs errors attached to the context after the handlers ran.
// Handlers write their own response bodies; this middleware only records the
// underlying causes, stacks included, for anything that ended in a 5xx.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, ginErr := range c.Errors {
			attrs := []any{
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"error", ginErr.Err.Error(),
			}
			if c.Writer.Status() >= http.StatusInternalServerError {
				attrs = append(attrs, "stack", errs.ExtractStackLines(ginErr.Err, 10))
				slog.Error("request failed", attrs...)
			} else {
				slog.Warn("request error", attrs...)
			}
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
