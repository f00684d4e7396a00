// Package logging wires log/slog for the wheel tools: a handler that
// copies attributes stored on the context into every record.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

type ctxKey string

const (
	slogFields  ctxKey = "slog_fields"
	PackageName string = "package"
)

type ContextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the Record before calling the underlying handler.
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, v := range attrs {
			r.AddAttrs(v)
		}
	}

	if err := h.Handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("handle log record %q: %w", r.Message, err)
	}

	return nil
}

// WithAttrs keeps the wrapper so context attributes survive Logger.With.
func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// AppendCtx adds an slog attribute to the provided context so that it will be included in any Record created with such context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		// Copy so sibling contexts never share a backing array.
		next := make([]slog.Attr, len(v), len(v)+1)
		copy(next, v)
		return context.WithValue(parent, slogFields, append(next, attr))
	}

	return context.WithValue(parent, slogFields, []slog.Attr{attr})
}

// PackageCtx returns a background context tagged with the package name.
func PackageCtx(packageName string) context.Context {
	return AppendCtx(context.Background(), slog.String(PackageName, packageName))
}

// New returns a text logger writing to w, at debug level when verbose.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(ContextHandler{Handler: slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})})
}

// Setup installs New(w, verbose) as the default logger and returns it.
func Setup(w io.Writer, verbose bool) *slog.Logger {
	logger := New(w, verbose)
	slog.SetDefault(logger)
	return logger
}
