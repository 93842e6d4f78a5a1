package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vibefolio/backend/pkg/metrics"
)

// Metrics counts finished requests per route and status for the named service.
func Metrics(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metrics.RequestsTotal.
			WithLabelValues(service, c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
