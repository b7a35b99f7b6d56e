package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultInstanceName, cfg.DAGChecker.General.InstanceName)
	assert.Equal(t, "info", cfg.LogLevel())
	assert.Equal(t, DefaultHost, cfg.Server().Host)
	assert.Equal(t, 8000, cfg.Server().Port)
	assert.Equal(t, 30*time.Second, cfg.Server().ReadTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS().AllowOrigins)
	assert.True(t, cfg.CORS().Credentials())
	assert.True(t, cfg.MetricsEnabled())
	assert.Equal(t, "/metrics", cfg.MetricsPath())
	require.NoError(t, Validate(cfg))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	content := `
dag-checker:
  general:
    log_level: debug
  server:
    port: 9090
    read_timeout: 5s
  cors:
    allow_origins: ["https://app.example.com", "http://localhost:5173"]
    allow_credentials: false
  metrics:
    enabled: false
`
	path := filepath.Join(t.TempDir(), "dag-checker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel())
	assert.Equal(t, 9090, cfg.Server().Port)
	assert.Equal(t, 5*time.Second, cfg.Server().ReadTimeout)
	// 未配置的字段使用默认值
	assert.Equal(t, DefaultWriteTimeout, cfg.Server().WriteTimeout)
	assert.Equal(t, DefaultHost, cfg.Server().Host)
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:5173"}, cfg.CORS().AllowOrigins)
	assert.False(t, cfg.CORS().Credentials())
	assert.False(t, cfg.MetricsEnabled())
}

func TestLoad_RepoConfig(t *testing.T) {
	cfg, err := Load("../../configs/dag-checker.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server().Port)
	assert.Equal(t, []string{DefaultFrontendOrigin}, cfg.CORS().AllowOrigins)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"非法YAML", "dag-checker: [unclosed"},
		{"非法日志级别", "dag-checker:\n  general:\n    log_level: verbose\n"},
		{"端口越界", "dag-checker:\n  server:\n    port: 70000\n"},
		{"空来源列表", "dag-checker:\n  cors:\n    allow_origins: []\n"},
		{"通配来源+凭证", "dag-checker:\n  cors:\n    allow_origins: [\"*\"]\n"},
		{"指标路径", "dag-checker:\n  metrics:\n    path: metrics\n"},
		{"指标路径为根路由", "dag-checker:\n  metrics:\n    path: /\n"},
		{"指标路径与健康检查冲突", "dag-checker:\n  metrics:\n    path: /health\n"},
		{"指标路径与就绪检查冲突", "dag-checker:\n  metrics:\n    path: /ready\n"},
		{"指标路径含通配符", "dag-checker:\n  metrics:\n    path: /metrics/*any\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.Error(t, err)
			if tt.name != "非法YAML" {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrNilConfig)

	cfg := Default()
	cfg.DAGChecker.Server.Port = -1
	assert.ErrorIs(t, Validate(cfg), ErrInvalidConfig)

	cfg = Default()
	cfg.DAGChecker.CORS.AllowOrigins = []string{"*"}
	noCreds := false
	cfg.DAGChecker.CORS.AllowCredentials = &noCreds
	assert.NoError(t, Validate(cfg))
}
