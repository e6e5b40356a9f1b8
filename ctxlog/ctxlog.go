// Package ctxlog carries the crucible command's slog.Logger on a
// context.Context, so helpers several calls below main log through the
// handler chosen by -log-format and -log-level.
//
// The search packages never log; only the command and its helpers do.
package ctxlog

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithLogger returns a copy of ctx that carries logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// With returns a copy of ctx whose logger adds args to every record,
// e.g. With(ctx, "run", "part2") while reporting one configuration.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// FromContext returns the logger stored by WithLogger. A context without
// one (or with a nil logger) yields slog.Default(), so tests and library
// callers need no setup.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
