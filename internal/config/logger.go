package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates the process logger writing to stderr.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	return newLogger(os.Stderr, cfg)
}

// newLogger builds a logger on out. Durations are logged as integer
// milliseconds so backend latencies read the same in json and console output.
func newLogger(out io.Writer, cfg LoggerConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.DurationFieldInteger = true

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", "ovenaura-storefront").
		Logger()
}
