package core

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record; Enabled returns false so callers skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.Default())
}

// SetLogger replaces the logger used by the engine and its sub-packages.
// Diagnostics go to slog.Default() until this is called. Pass nil to silence
// all output.
//
// Levels used:
//   - [slog.LevelDebug]: per-draw diagnostics
//   - [slog.LevelInfo]: lifecycle (window open/close, GL version)
//   - [slog.LevelWarn]: skipped draws, resource load failures
//   - [slog.LevelError]: shader compile/link failures, init failures
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current engine logger.
func Logger() *slog.Logger { return loggerPtr.Load() }
