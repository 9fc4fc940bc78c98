// Package logging provides structured logging configuration using zerolog.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output ("debug", "info", "warn",
	// "error"). Unknown values fall back to info.
	Level string

	// Pretty enables human-readable console output (default: JSON).
	Pretty bool

	// Output is the writer logs go to (default: os.Stderr). Stdout is
	// reserved for the stdio MCP transport.
	Output io.Writer
}

// Setup configures the global zerolog logger and returns it.
func Setup(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output}
	}

	logger := zerolog.New(output).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

// ParseLevel converts a level string to a zerolog.Level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	if lvl, err := zerolog.ParseLevel(level); err == nil && lvl != zerolog.NoLevel {
		return lvl
	}
	return zerolog.InfoLevel
}

// NewLogger creates a logger scoped to the given component name.
//
// Context fields used across the server:
//   - path: RT endpoint path
//   - status: HTTP status code
//   - kind: error kind (network, authentication, ..., api)
//   - tool: MCP tool name
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
