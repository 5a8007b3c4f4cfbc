package game

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// EnableDebug turns on debug-level session logs.
var EnableDebug = false

// NewLogger returns a JSON logger writing to w.
func NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(logLevel()).With().Timestamp().Logger()
}

// NewConsoleLogger returns a human-readable logger for terminals.
func NewConsoleLogger(w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(logLevel()).With().Timestamp().Logger()
}

func logLevel() zerolog.Level {
	if EnableDebug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
