package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"family_shopping/internal/metrics"
)

// Metrics 记录请求数和耗时，path 使用路由模板避免基数爆炸
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
