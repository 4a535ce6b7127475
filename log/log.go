// Package log wraps [log/slog] with a settable level and handler, shared by
// the config loader and the command line tool.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type (
	Attr    = slog.Attr
	Handler = slog.Handler
)

// DiscardHandler drops every record.
var DiscardHandler Handler = slog.NewTextHandler(io.Discard, nil)

var (
	level  = new(slog.LevelVar)
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
)

// SetLogLevel sets the minimum level of the default logger.
func SetLogLevel(l Level) {
	level.Set(slog.Level(l))
}

// SetHandler replaces the default logger's handler.
func SetHandler(h Handler) {
	logger = slog.New(h)
}

// SetTextHandler directs text-format output to w.
func SetTextHandler(w io.Writer) {
	SetHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetJSONHandler directs JSON-format output to w.
func SetJSONHandler(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// With adds args to every record logged by the default logger.
func With(args ...any) {
	logger = logger.With(args...)
}

// Error logs msg at [LevelError], attaching err as the "cause" attribute
// when non-nil.
func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}
	logger.Error(msg, args...)
}

// Fatal logs like [Error] and exits.
func Fatal(msg string, err error, args ...any) {
	Error(msg, err, args...)
	os.Exit(1)
}

// Warn logs msg at [LevelWarn].
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Info logs msg at [LevelInfo].
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Debug logs msg at [LevelDebug].
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Printf logs a formatted message at [LevelInfo].
func Printf(format string, v ...any) {
	logger.Info(fmt.Sprintf(format, v...))
}

// Println logs its arguments at [LevelInfo].
func Println(v ...any) {
	logger.Info(fmt.Sprintln(v...))
}
