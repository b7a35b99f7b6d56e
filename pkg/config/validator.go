package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilConfig 配置为空
	ErrNilConfig = errors.New("config is nil")
	// ErrInvalidConfig 配置校验失败，具体原因见包装的错误信息
	ErrInvalidConfig = errors.New("invalid config")
)

// reservedPaths 内置路由，metrics.path 不能与之重复
var reservedPaths = map[string]bool{
	"/":                true,
	"/health":          true,
	"/ready":           true,
	"/pipelines/parse": true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate 校验配置合法性
func Validate(cfg *AppConfig) error {
	if cfg == nil {
		return ErrNilConfig
	}

	// 校验General
	if !validLogLevels[cfg.DAGChecker.General.LogLevel] {
		return fmt.Errorf("%w: log_level必须是debug/info/warn/error之一, got %q",
			ErrInvalidConfig, cfg.DAGChecker.General.LogLevel)
	}

	// 校验Server
	if err := ValidateServer(cfg.DAGChecker.Server); err != nil {
		return err
	}

	// 校验CORS
	if len(cfg.DAGChecker.CORS.AllowOrigins) == 0 {
		return fmt.Errorf("%w: cors.allow_origins不能为空", ErrInvalidConfig)
	}
	for _, origin := range cfg.DAGChecker.CORS.AllowOrigins {
		if origin == "*" && cfg.DAGChecker.CORS.Credentials() {
			return fmt.Errorf("%w: cors.allow_origins不能在允许凭证时使用*", ErrInvalidConfig)
		}
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("%w: cors.allow_origins包含空值", ErrInvalidConfig)
		}
	}

	// 校验Metrics
	if err := validateMetricsPath(cfg.DAGChecker.Metrics.Path); err != nil {
		return err
	}

	return nil
}

// ValidateServer 校验服务器配置（命令行覆盖端口后也需要再次校验）
func ValidateServer(s ServerConfig) error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("%w: server.port必须在1-65535之间, got %d", ErrInvalidConfig, s.Port)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 {
		return fmt.Errorf("%w: server超时时间必须大于0", ErrInvalidConfig)
	}
	return nil
}

func validateMetricsPath(path string) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: metrics.path必须以/开头, got %q", ErrInvalidConfig, path)
	}
	if reservedPaths[path] {
		return fmt.Errorf("%w: metrics.path与内置路由冲突, got %q", ErrInvalidConfig, path)
	}
	if strings.ContainsAny(path, ":*") {
		return fmt.Errorf("%w: metrics.path不能包含路由通配符, got %q", ErrInvalidConfig, path)
	}
	return nil
}
