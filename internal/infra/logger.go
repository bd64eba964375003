package infra

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger creates a slog.Logger writing JSON to a rotating file. Logs never
// go to stdout: that stream belongs to the interactive session.
func NewLogger(cfg *Config) *slog.Logger {
	path := cfg.Logging.Path
	if path == "" {
		path = "logs/matchbook.log"
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		// Fallback to stderr if the log directory cannot be created
		return slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	fileLogger := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(slog.NewJSONHandler(fileLogger, opts))
}
