package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/planet-detroit/civic-action-api/internal/service"
)

// Metrics returns middleware that captures request metrics using the
// provided service. Scrape and probe endpoints are excluded.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil || c.Request.URL.Path == "/metrics" || c.Request.URL.Path == "/health" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, status, time.Since(start))
	}
}
