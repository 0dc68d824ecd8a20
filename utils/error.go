package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx answer of the slot API.
type ErrorResponse struct {
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// LoggerFrom returns the request-scoped logger stored under "logger", or the global one.
func LoggerFrom(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return GetLogger()
}

// ErrorHandler turns a panicking handler, or one that recorded errors on the context
// without answering, into a 500 carrying the request id.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				LoggerFrom(c).Error("handler panicked",
					zap.String("method", c.Request.Method),
					zap.String("path", c.FullPath()),
					zap.Error(fmt.Errorf("%v", rec)),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message:   "Internal Server Error",
					Details:   "the request could not be completed",
					RequestID: c.Writer.Header().Get("X-Request-ID"),
				})
			}
		}()
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			JSONError(c, http.StatusInternalServerError, "Internal Server Error", c.Errors.Last().Error())
		}
	}
}

// JSONError answers status with an ErrorResponse. Server errors are logged at error
// level, client errors at warn.
func JSONError(c *gin.Context, status int, message string, details string) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("path", c.FullPath()),
		zap.String("details", details),
	}
	if status >= http.StatusInternalServerError {
		LoggerFrom(c).Error(message, fields...)
	} else {
		LoggerFrom(c).Warn(message, fields...)
	}
	c.JSON(status, ErrorResponse{
		Message:   message,
		Details:   details,
		RequestID: c.Writer.Header().Get("X-Request-ID"),
	})
}
