package config

import (
	"time"
)

// 默认值
const (
	DefaultInstanceName    = "dag-checker"
	DefaultLogLevel        = "info"
	DefaultEnv             = "dev"
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8000
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultFrontendOrigin  = "http://localhost:3000"
	DefaultCORSMaxAge      = 10 * time.Minute
	DefaultMetricsPath     = "/metrics"
)

// AppConfig 服务配置（对外导出）
// 启动时构建一次，之后只读
type AppConfig struct {
	DAGChecker struct {
		General struct {
			InstanceName string `yaml:"instance_name"`
			LogLevel     string `yaml:"log_level"`
			Env          string `yaml:"env"`
		} `yaml:"general"`
		Server  ServerConfig  `yaml:"server"`
		CORS    CORSConfig    `yaml:"cors"`
		Metrics MetricsConfig `yaml:"metrics"`
	} `yaml:"dag-checker"`
}

// ServerConfig HTTP服务器配置
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CORSConfig 跨域配置
// 默认只允许前端来源，所有方法和请求头，允许携带凭证
type CORSConfig struct {
	AllowOrigins     []string      `yaml:"allow_origins"`
	AllowCredentials *bool         `yaml:"allow_credentials"`
	MaxAge           time.Duration `yaml:"max_age"`
}

// MetricsConfig Prometheus指标配置
type MetricsConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default 返回应用了默认值的配置
func Default() *AppConfig {
	cfg := &AppConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// Server 获取服务器配置
func (c *AppConfig) Server() ServerConfig {
	return c.DAGChecker.Server
}

// CORS 获取跨域配置
func (c *AppConfig) CORS() CORSConfig {
	return c.DAGChecker.CORS
}

// LogLevel 获取日志级别
func (c *AppConfig) LogLevel() string {
	return c.DAGChecker.General.LogLevel
}

// MetricsEnabled 是否开启 /metrics
func (c *AppConfig) MetricsEnabled() bool {
	m := c.DAGChecker.Metrics
	return m.Enabled == nil || *m.Enabled
}

// MetricsPath 获取指标暴露路径
func (c *AppConfig) MetricsPath() string {
	return c.DAGChecker.Metrics.Path
}

// Credentials 是否允许跨域携带凭证
func (c CORSConfig) Credentials() bool {
	return c.AllowCredentials == nil || *c.AllowCredentials
}

// ApplyDefaults 应用默认值
func (c *AppConfig) ApplyDefaults() {
	// General默认值
	g := &c.DAGChecker.General
	if g.InstanceName == "" {
		g.InstanceName = DefaultInstanceName
	}
	if g.LogLevel == "" {
		g.LogLevel = DefaultLogLevel
	}
	if g.Env == "" {
		g.Env = DefaultEnv
	}

	// Server默认值
	s := &c.DAGChecker.Server
	if s.Host == "" {
		s.Host = DefaultHost
	}
	if s.Port == 0 {
		s.Port = DefaultPort
	}
	if s.ReadTimeout <= 0 {
		s.ReadTimeout = DefaultReadTimeout
	}
	if s.WriteTimeout <= 0 {
		s.WriteTimeout = DefaultWriteTimeout
	}
	if s.ShutdownTimeout <= 0 {
		s.ShutdownTimeout = DefaultShutdownTimeout
	}

	// CORS默认值
	cors := &c.DAGChecker.CORS
	if cors.AllowOrigins == nil {
		cors.AllowOrigins = []string{DefaultFrontendOrigin}
	}
	if cors.MaxAge <= 0 {
		cors.MaxAge = DefaultCORSMaxAge
	}

	// Metrics默认值
	if c.DAGChecker.Metrics.Path == "" {
		c.DAGChecker.Metrics.Path = DefaultMetricsPath
	}
}
