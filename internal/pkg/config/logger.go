package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// logLevel 全局日志级别，配置热更新时直接修改
var logLevel = new(slog.LevelVar)

// LoggerOptions 日志初始化参数
type LoggerOptions struct {
	Level     string
	Path      string // 为空只输出到 stdout
	Component string
}

// ParseLevel 将字符串解析为 slog 级别，未知值按 info 处理
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetLogLevel 运行时调整日志级别
func SetLogLevel(level string) {
	logLevel.Set(ParseLevel(level))
}

// SetupLogger 根据配置设置默认 logger，返回的 Closer 用于关闭日志文件
func SetupLogger(opts LoggerOptions) (io.Closer, error) {
	logLevel.Set(ParseLevel(opts.Level))

	var w io.Writer = os.Stdout
	var closer io.Closer
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, err
		}
		rotating := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w = io.MultiWriter(os.Stdout, rotating)
		closer = rotating
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
	if opts.Component != "" {
		logger = logger.With("component", opts.Component)
	}
	slog.SetDefault(logger)
	return closer, nil
}
