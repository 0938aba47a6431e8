// Package logging provides zerolog construction and context propagation
// for the trackboard CLI and TUI.
package logging

import (
	"context"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	Level string

	// Format selects "console" (human readable) or "json".
	Format string

	// Output selects "stderr" or "file".
	Output string

	// File is the log file path when Output is "file".
	File string

	// Caller enables caller annotation on every event.
	Caller bool
}

// Result describes the logger that was actually built, including whether
// the configured file could be opened or a stderr fallback was used.
type Result struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	f := r.file
	r.file = nil
	return f.Close()
}

// New builds a logger from the config. A file output that cannot be opened
// falls back to stderr rather than failing the command.
func New(cfg Config) Result {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	res := Result{}
	var out io.Writer = os.Stderr

	if cfg.Output == "file" && cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if openErr != nil {
			res.FallbackUsed = true
			res.FallbackReason = openErr.Error()
		} else {
			res.UsingFile = true
			res.FilePath = cfg.File
			res.file = f
			out = f
		}
	}

	if cfg.Format != "json" && !res.UsingFile {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logCtx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}
	res.Logger = logCtx.Logger()
	return res
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger attached to ctx, or a disabled-by-default
// global logger when none is attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

type traceIDKey struct{}

// ContextWithTraceID attaches a trace ID to the context.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID attached to ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// GetOrGenerateTraceID returns the context's trace ID, minting a new ULID
// when the context does not carry one. One ID identifies one session.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0) //nolint:gosec // IDs, not secrets.
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
