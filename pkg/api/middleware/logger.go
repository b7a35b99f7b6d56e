package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LENAX/dag-checker/pkg/logging"
	"github.com/LENAX/dag-checker/pkg/observability"
)

// unmatchedRoute 未匹配路由的指标标签，避免任意路径撑爆标签基数
const unmatchedRoute = "unmatched"

// Logger 访问日志 + HTTP指标中间件
// metrics 可以为nil
func Logger(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.RecordRequest(c.Request.Method, route, status, elapsed)

		logger := logging.FromContext(c.Request.Context())
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", elapsed.Round(time.Microsecond),
			"client_ip", c.ClientIP(),
		}
		switch {
		case status >= 500:
			logger.Error("request", fields...)
		case status >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
