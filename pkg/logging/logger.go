// Package logging 提供基于 charmbracelet/log 的结构化日志
package logging

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New 创建日志实例
// level 取值 debug/info/warn/error，非法值按 info 处理
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
		Level:           ParseLevel(level),
	})
}

// ParseLevel 解析日志级别
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Discard 返回丢弃所有输出的日志实例（测试用）
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger 将日志实例放入context
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext 从context获取日志实例，不存在时返回默认实例
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok && l != nil {
		return l
	}
	return log.Default()
}
