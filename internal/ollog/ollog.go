// Package ollog is a thin wrapper over log/slog used by cmd/oliver for
// `run -v/--verbose` diagnostics (the source file, the lexer's token count,
// and the end of the run). It never renders language-level output — EMIT/ENDL own
// that — so it is kept out of internal/eval entirely.
//
// No example repo in the pack brings a structured-logging library (the
// teacher logs through the standard testing/CLI output only); log/slog is
// therefore the grounded choice here — see DESIGN.md.
package ollog

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps a *slog.Logger with the handful of calls cmd/oliver needs.
type Logger struct {
	*slog.Logger
}

// New builds a Logger writing text-formatted records to w, at debug level
// when verbose is set and at warn level otherwise.
// Passing a nil w defaults to os.Stderr.
func New(w io.Writer, verbose bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(h)}
}

// Discard returns a Logger that drops every record, used where cmd/oliver
// runs without -v.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Stage logs a pipeline-stage diagnostic (lexer/compiler/evaluator) with
// structured fields instead of an ad hoc Printf string.
func (l *Logger) Stage(name string, fields ...any) {
	l.Debug("stage", append([]any{"stage", name}, fields...)...)
}
