package logger

import (
	"io"
	"log/slog"
	"strings"
)

type AppLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type appLogger struct {
	logger *slog.Logger
}

func NewAppLogger(logger *slog.Logger) AppLogger {
	return &appLogger{
		logger: logger,
	}
}

// NewTextLoggerは指定レベル以上をテキスト形式でwに出力するロガーを生成します。
// 標準出力は帳票に使うため、通常は標準エラー出力を渡します。
func NewTextLogger(w io.Writer, level string) AppLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return NewAppLogger(slog.New(handler))
}

// NewNopLoggerは何も出力しないロガーです。
func NewNopLogger() AppLogger {
	return NewTextLogger(io.Discard, "error")
}

// ParseLevelは設定値の文字列をslog.Levelに変換します。不明な値はwarn扱い。
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func (l *appLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *appLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *appLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *appLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
