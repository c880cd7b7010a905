package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"autoshop-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		reqID := RequestIDFromContext(c)

		shopID, _ := c.Get("shopId")
		extractionOutcome := ""
		if raw, ok := c.Get("extractionOutcome"); ok {
			if s, ok := raw.(string); ok {
				extractionOutcome = s
			}
		}

		telemetry.Info("request.complete", map[string]any{
			"request_id":         reqID,
			"method":             c.Request.Method,
			"path":               c.Request.URL.Path,
			"status":             status,
			"extraction_outcome": extractionOutcome,
			"duration_ms":        float64(latency.Microseconds()) / 1000.0,
			"shop_id":            shopID,
			"client_ip":          c.ClientIP(),
			"user_agent":         c.Request.UserAgent(),
		})
	}
}
