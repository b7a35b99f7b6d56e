package api

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/LENAX/dag-checker/pkg/api/handler"
	"github.com/LENAX/dag-checker/pkg/api/middleware"
	"github.com/LENAX/dag-checker/pkg/config"
	"github.com/LENAX/dag-checker/pkg/observability"
)

// SetupRouter 设置路由
// metrics 为nil时不注册 /metrics
func SetupRouter(cfg *config.AppConfig, logger *log.Logger, metrics *observability.Metrics, version string) *gin.Engine {
	// 设置gin模式
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// 全局中间件
	router.Use(middleware.RequestID(logger))
	router.Use(middleware.Logger(metrics))
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.CORS()))

	// 创建handlers
	healthHandler := handler.NewHealthHandler(version)
	pipelineHandler := handler.NewPipelineHandler(metrics)

	router.GET("/", healthHandler.Ping)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	pipelines := router.Group("/pipelines")
	{
		pipelines.POST("/parse", pipelineHandler.Parse)
	}

	if metrics != nil {
		router.GET(cfg.MetricsPath(), gin.WrapH(metrics.Handler()))
	}

	return router
}
