package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/beixiyo/ai-sync/internal/errors"
)

// LevelTrace is below Debug and logs every file a migrator touches.
const LevelTrace = slog.Level(-8)

// DebugEnv enables debug logging when no -v flag is given.
const DebugEnv = "AI_SYNC_DEBUG"

// Format specifies the output format for log messages.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ParseFormat validates a --log-format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	}
	return "", errors.Newf("unknown log format %q (want text or json)", s)
}

// Config holds the configuration for creating a new logger.
type Config struct {
	Level  slog.Level
	Format Format
	// Output defaults to os.Stderr.
	Output io.Writer
}

// NewFormatHandler returns the colored text handler, or a JSON handler for
// FormatJSON.
func NewFormatHandler(format Format, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if out == nil {
		out = os.Stderr
	}
	if format == FormatJSON {
		return slog.NewJSONHandler(out, opts)
	}
	return NewHandler(out, opts)
}

// New creates a logger with the given configuration.
func New(cfg Config) *slog.Logger {
	return slog.New(NewFormatHandler(cfg.Format, cfg.Output, &slog.HandlerOptions{Level: cfg.Level}))
}

// LevelFromVerbosity maps the count of -v flags to a level.
// Zero or less is Warn, one is Info, two is Debug, three or more is Trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// VerbosityFromEnv returns the verbosity implied by AI_SYNC_DEBUG:
// "1" or "true" is Debug, "2" is Trace, anything else is 0.
func VerbosityFromEnv() int {
	switch os.Getenv(DebugEnv) {
	case "1", "true":
		return 2
	case "2":
		return 3
	}
	return 0
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

// NewDiscard creates a logger that discards all output.
// Use this for quiet mode or when logging should be suppressed.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testWriter sends each log line to t.Log.
type testWriter struct {
	t testing.TB
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// ForTest returns a Trace level logger writing to the test log, so that
// migrator output shows up for failing tests and under -v.
func ForTest(t testing.TB) *slog.Logger {
	t.Helper()
	return New(Config{
		Level:  LevelTrace,
		Format: FormatText,
		Output: &testWriter{t: t},
	})
}
