// Package logger wraps zerolog with a process-wide logger writing to stderr.
// Stdout stays clean for command output and MCP stdio framing.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log = newLogger(zerolog.InfoLevel)

func newLogger(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// SetLevel sets the global log level from a string (debug, info, warn, error).
// Unknown values fall back to info.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	log = newLogger(parsed)
}

// Debug starts a debug-level event.
func Debug() *zerolog.Event { return log.Debug() }

// Info starts an info-level event.
func Info() *zerolog.Event { return log.Info() }

// Warn starts a warn-level event.
func Warn() *zerolog.Event { return log.Warn() }

// Error starts an error-level event.
func Error() *zerolog.Event { return log.Error() }
