package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger 按设置创建 slog 日志器。
// 设置了 File 时写入按大小轮转的文件，返回的 io.Closer 负责关闭文件；否则写入 stderr，closer 为 nil。
func newLogger(ls logSettings, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := parseLevel(ls.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		out    = stderr
		closer io.Closer
	)
	if ls.File != "" {
		if ls.MaxSizeMB <= 0 || ls.MaxBackups < 0 {
			return nil, nil, fmt.Errorf("log rotation: max_size_mb must be > 0 and max_backups >= 0, got %d and %d",
				ls.MaxSizeMB, ls.MaxBackups)
		}
		lj := &lumberjack.Logger{
			Filename:   ls.File,
			MaxSize:    ls.MaxSizeMB,
			MaxBackups: ls.MaxBackups,
			Compress:   true,
		}
		out, closer = lj, lj
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(ls.Format)) {
	case "", "text":
		handler = slog.NewTextHandler(out, opts)
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		if closer != nil {
			_ = closer.Close() //nolint:errcheck // 构建失败路径，文件尚未写入
		}
		return nil, nil, fmt.Errorf("unknown log format %q", ls.Format)
	}

	return slog.New(handler), closer, nil
}

// parseLevel 解析日志级别，支持 debug/info/warn/warning/error（大小写不敏感）。
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
