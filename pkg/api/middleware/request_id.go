package middleware

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LENAX/dag-checker/pkg/logging"
)

const (
	// HeaderRequestID 请求ID头
	HeaderRequestID = "X-Request-ID"
	// ContextKeyRequestID gin.Context 中保存请求ID的键
	ContextKeyRequestID = "request_id"
)

// RequestID 为每个请求分配请求ID，并把带请求ID的日志实例放入请求context
// 客户端传入的 X-Request-ID 会被沿用
func RequestID(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)

		ctx := logging.WithLogger(c.Request.Context(), logger.With(ContextKeyRequestID, id))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
