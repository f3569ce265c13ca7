package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/blobflow/internal/metrics"
)

// Logger returns a gin.HandlerFunc (middleware) that logs requests using zerolog
// and records their latency per route.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HandlerRequestDuration.WithLabelValues(route, strconv.Itoa(statusCode)).Observe(latency.Seconds())

		var errorMessage string
		if len(c.Errors) > 0 {
			errorMessage = c.Errors.String()
		}

		event := log.Debug()
		if statusCode >= 500 {
			event = log.Warn()
		}
		event.
			Str("path", path).
			Str("raw", raw).
			Str("route", route).
			Int("status", statusCode).
			Str("method", c.Request.Method).
			Str("ip", c.ClientIP()).
			Dur("latency", latency).
			Str("error", errorMessage).
			Msg("incoming request")
	}
}
