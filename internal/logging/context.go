package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey keys the logger stored in a context.
type ctxKey struct{}

// WithLogger attaches a logger to the context so downstream code can
// recover it with FromContext.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger attached to the context, or the
// shared default when none is attached.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(ctxKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
