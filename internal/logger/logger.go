// Package logger builds the process-wide slog logger: a tinted console
// handler in development, JSON in production, with optional rotating file
// output.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ekisa-team/tensorbridge/internal/env"
)

// Options configure the logger.
type Options struct {
	level     slog.Level
	logToFile bool
	logFile   string
}

// Option mutates the logger options.
type Option func(*Options)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.level = level
	}
}

// WithLogToFile enables rotating file output alongside the console handler.
func WithLogToFile(enabled bool) Option {
	return func(o *Options) {
		o.logToFile = enabled
	}
}

// WithLogFile sets the log file path used when file output is enabled.
func WithLogFile(path string) Option {
	return func(o *Options) {
		o.logFile = path
	}
}

// New builds a logger for the given environment.
func New(environment env.Environment, opts ...Option) *slog.Logger {
	options := Options{
		level:   slog.LevelInfo,
		logFile: "logs/tensorbridge.log",
	}
	if environment == env.Development {
		options.level = slog.LevelDebug
	}
	for _, opt := range opts {
		opt(&options)
	}

	var out io.Writer = os.Stderr
	if options.logToFile {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   options.logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	var handler slog.Handler
	if environment == env.Production {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: options.level})
	} else {
		handler = tint.NewHandler(out, &tint.Options{
			Level:      options.level,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}
