package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"voicehub/control-api/internal/infrastructure/metrics"
)

// Metrics middleware records request duration per method, route and status.
// The route template is used rather than the raw path so that parameterized
// routes do not explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RecordRequest(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
