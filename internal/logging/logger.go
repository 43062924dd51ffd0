// Package logging wraps charmbracelet/log for billiejean. All
// diagnostic output goes to stderr so it never mixes with review
// reports on stdout.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Shared default logger, initialized lazily.
var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// New returns a stderr logger at the given level. Unknown level names
// fall back to info.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

// parseLevel maps a level name to a log level, defaulting to info.
func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the shared logger, creating it on first use.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// SetDefault replaces the shared logger.
func SetDefault(logger *log.Logger) {
	defaultLogger = logger
}

// SetLevel changes the level of the shared logger.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
