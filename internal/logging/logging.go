// Package logging 根据日志配置构建 slog.Logger。
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/lwmacct/251207-go-pkg-placeholder/internal/config"
)

// NewLogger 按配置创建 logger，Format 为 "json" 时使用 JSON handler，否则为 text。
// 级别无效或为空时使用 INFO。
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel 解析日志级别名称，大小写不敏感。
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
