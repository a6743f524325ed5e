package config

import "log/slog"

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	// File enables rotating JSON logs; empty logs text to stderr.
	File       string `yaml:"file" env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"maxSizeMB" env:"LOG_MAX_SIZE_MB" validate:"gte=0"`
	MaxBackups int    `yaml:"maxBackups" env:"LOG_MAX_BACKUPS" validate:"gte=0"`
	Compress   bool   `yaml:"compress" env:"LOG_COMPRESS"`
}

// SlogLevel returns the configured level, Info when unset or unknown.
func (c LoggingConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SessionConfig controls how a navigator consumes game events.
type SessionConfig struct {
	// EventBuffer is the capacity of the event queue feeding a navigator.
	EventBuffer int `yaml:"eventBuffer" env:"EVENT_BUFFER" validate:"gte=0"`
	// StopOnInvalidTransition ends the run on the first rejected event
	// instead of logging and skipping it.
	StopOnInvalidTransition bool `yaml:"stopOnInvalidTransition" env:"STOP_ON_INVALID_TRANSITION"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Session SessionConfig `yaml:"session"`
}
