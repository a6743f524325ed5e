package internal

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/theoremus-urban-solutions/ridenav/config"
)

// InitLogging builds the process logger and installs it as the slog
// default. With a log file configured, output is JSON rotated by
// lumberjack; otherwise text goes to stderr, keeping stdout for output.
func InitLogging(cfg config.LoggingConfig) *slog.Logger {
	logger := slog.New(newHandler(cfg, os.Stderr))
	slog.SetDefault(logger)
	return logger
}

func newHandler(cfg config.LoggingConfig, console io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.File == "" {
		return slog.NewTextHandler(console, opts)
	}
	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // MB
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
	}
	return slog.NewJSONHandler(w, opts)
}
