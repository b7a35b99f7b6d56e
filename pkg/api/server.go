package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/LENAX/dag-checker/pkg/config"
	"github.com/LENAX/dag-checker/pkg/observability"
)

// APIServer HTTP API服务器
type APIServer struct {
	config     *config.AppConfig
	logger     *log.Logger
	metrics    *observability.Metrics
	httpServer *http.Server
	version    string
}

// NewAPIServer 创建API服务器
func NewAPIServer(cfg *config.AppConfig, logger *log.Logger, version string) *APIServer {
	var metrics *observability.Metrics
	if cfg.MetricsEnabled() {
		metrics = observability.NewMetrics()
	}

	s := &APIServer{
		config:  cfg,
		logger:  logger,
		metrics: metrics,
		version: version,
	}
	s.httpServer = &http.Server{
		Addr:         s.Addr(),
		Handler:      SetupRouter(cfg, logger, metrics, version),
		ReadTimeout:  cfg.Server().ReadTimeout,
		WriteTimeout: cfg.Server().WriteTimeout,
	}
	return s
}

// Handler 获取HTTP处理器（测试用）
func (s *APIServer) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start 启动服务器（阻塞直到服务器关闭）
func (s *APIServer) Start() error {
	s.logger.Info("🚀 DAG Checker API Server starting", "addr", s.Addr(), "version", s.version)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server listen failed: %w", err)
	}
	return nil
}

// Serve 在已有监听器上启动服务器
func (s *APIServer) Serve(ln net.Listener) error {
	s.logger.Info("🚀 DAG Checker API Server starting", "addr", ln.Addr().String(), "version", s.version)

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server serve failed: %w", err)
	}
	return nil
}

// Shutdown 优雅关闭服务器
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("🛑 Shutting down API Server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("✅ API Server stopped")
	return nil
}

// Run 启动服务器，ctx 取消后在 shutdown_timeout 内优雅关闭
func (s *APIServer) Run(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if ln != nil {
			return s.Serve(ln)
		}
		return s.Start()
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server().ShutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Addr 获取服务器地址
func (s *APIServer) Addr() string {
	return net.JoinHostPort(s.config.Server().Host, strconv.Itoa(s.config.Server().Port))
}
