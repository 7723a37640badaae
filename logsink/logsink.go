// Package logsink is a thin structured-logging facade consumed by the astar
// and mitm search engines for progress reporting (max cost explored, new
// best solution, per-round frontier sizes) — the Go equivalent of the
// ad hoc progress prints, generalized into something
// callers can swap out or silence in tests.
package logsink

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the minimal surface the search packages need: leveled,
// printf-style progress messages. Neither method returns an error —
// logging a progress line is never allowed to fail a search.
type Logger interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// console wraps a zerolog.Logger configured for human-readable console
// output, the default sink used by the CLI.
type console struct {
	logger zerolog.Logger
}

// NewConsole returns the default Logger: human-readable, timestamped
// console output with no level filter of its own, so both Info and Debug
// lines (such as the value-index collision counter) are emitted — filtering
// is left to zerolog's level machinery via SetGlobalLevel if a caller wants
// quieter output.
func NewConsole() Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}

	return console{logger: zerolog.New(writer).With().Timestamp().Logger()}
}

func (c console) Infof(format string, args ...interface{}) {
	c.logger.Info().Msgf(format, args...)
}

func (c console) Debugf(format string, args ...interface{}) {
	c.logger.Debug().Msgf(format, args...)
}

// noop discards every log line; used as the default in tests and anywhere
// a caller does not supply WithLogger.
type noop struct{}

// NoOp returns a Logger that discards everything it is given.
func NoOp() Logger {
	return noop{}
}

func (noop) Infof(string, ...interface{})  {}
func (noop) Debugf(string, ...interface{}) {}
