package filament

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gofilament/filament/backend"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for filament and its backend packages.
// By default, filament produces no log output. Call SetLogger to enable
// logging.
//
// Backend packages receive the logger when an Engine selects their
// platform, so configure logging before New (or pass WithLogger, which
// does the same thing).
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by filament:
//   - [slog.LevelDebug]: per-frame diagnostics and resource bookkeeping
//   - [slog.LevelInfo]: lifecycle events (platform selected, driver created)
//   - [slog.LevelWarn]: non-fatal issues (teardown errors)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	filament.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	filament.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by filament.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by platforms that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes the logger to a platform if it implements the
// loggerSetter interface. Called from New so the selected platform's
// package shares the engine's logging configuration.
func propagateLogger(p backend.Platform, l *slog.Logger) {
	if ls, ok := p.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}
