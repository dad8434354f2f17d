package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vantagevc/dealflow-backend/pkg/logger"
)

// RequestLogger logs one structured line per request, tagged with a
// request id that is also echoed back to the client.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()[:8]
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		event := logger.GetLogger().Info()
		switch {
		case status >= 500:
			event = logger.GetLogger().Error()
		case status >= 400:
			event = logger.GetLogger().Warn()
		}

		event = event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Uint("user_id", GetUserID(c)).
			Int("body_size", c.Writer.Size())

		// Deal and memo routes carry the deal id for log correlation
		if dealID := c.Param("deal_id"); dealID != "" {
			event = event.Str("deal_id", dealID)
		} else if dealID := c.Param("id"); dealID != "" {
			event = event.Str("deal_id", dealID)
		}

		event.Msg("request")
	}
}
