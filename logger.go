package sketch

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/sketch/storage"
	"github.com/gogpu/sketch/surface"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for sketch and all its sub-packages.
// By default, sketch produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by sketch:
//   - [slog.LevelDebug]: gesture transitions, superseded restores, storage round trips
//   - [slog.LevelInfo]: page lifecycle (created, selected, saved, opened)
//   - [slog.LevelWarn]: failed restores and refused operations
//
// Example:
//
//	sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	surface.SetLogger(l)
	storage.SetLogger(l)
}

// Logger returns the current logger used by sketch.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
