package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LENAX/dag-checker/pkg/api/dto"
	"github.com/LENAX/dag-checker/pkg/config"
)

// allowedMethods 允许所有方法
var allowedMethods = strings.Join([]string{
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
}, ", ")

// CORS 跨域中间件
// 只接受配置中的来源；允许所有方法和请求头；按配置允许携带凭证。
// 非法来源的预检请求返回400，普通请求照常处理但不带跨域响应头。
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowOrigins))
	allowAll := false
	for _, origin := range cfg.AllowOrigins {
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[strings.TrimRight(origin, "/")] = true
	}
	credentials := cfg.Credentials()
	maxAge := strconv.Itoa(int(cfg.MaxAge.Seconds()))

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		ok := allowAll || allowed[origin]
		h := c.Writer.Header()

		// 预检请求
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			if !ok {
				c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(400, "Disallowed CORS origin"))
				return
			}
			setAllowOrigin(h, origin, allowAll, credentials)
			h.Set("Access-Control-Allow-Methods", allowedMethods)
			if reqHeaders := c.GetHeader("Access-Control-Request-Headers"); reqHeaders != "" {
				h.Set("Access-Control-Allow-Headers", reqHeaders)
			}
			h.Set("Access-Control-Max-Age", maxAge)
			c.AbortWithStatus(http.StatusOK)
			return
		}

		if ok {
			setAllowOrigin(h, origin, allowAll, credentials)
		}
		c.Next()
	}
}

func setAllowOrigin(h http.Header, origin string, allowAll, credentials bool) {
	if allowAll && !credentials {
		h.Set("Access-Control-Allow-Origin", "*")
		return
	}
	h.Set("Access-Control-Allow-Origin", origin)
	h.Add("Vary", "Origin")
	if credentials {
		h.Set("Access-Control-Allow-Credentials", "true")
	}
}
