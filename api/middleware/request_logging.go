package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"blogdeck/internal/logger"
)

// RequestLogging logs one structured line per request once the handler chain
// has finished.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		fields := logger.Fields{
			"method":      method,
			"path":        path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if requestID := c.GetString("request_id"); requestID != "" {
			fields["request_id"] = requestID
		}
		if rawQuery := c.Request.URL.RawQuery; rawQuery != "" {
			fields["query"] = rawQuery
		}
		logger.InfoWithFields("completed request", fields)
	}
}
