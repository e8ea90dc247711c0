package logger

import (
	"fmt"
	"log/slog"
)

// Logger is a thin fluent wrapper around slog that carries the domain and
// function context of the caller on every record.
type Logger struct {
	log *slog.Logger
}

func New(domain string) Logger {
	return Logger{log: slog.Default().With("domain", domain)}
}

func (l Logger) Function(name string) Logger {
	return Logger{log: l.log.With("function", name)}
}

func (l Logger) File(name string) Logger {
	return Logger{log: l.log.With("file", name)}
}

func (l Logger) With(args ...any) Logger {
	return Logger{log: l.log.With(args...)}
}

func (l Logger) Info(msg string, args ...any) {
	l.log.Info(msg, args...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.log.Warn(msg, args...)
}

func (l Logger) Debug(msg string, args ...any) {
	l.log.Debug(msg, args...)
}

// Err logs the error with context and returns it wrapped with msg so callers
// can bubble it up in one statement.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.log.Error(msg, append(args, "error", err)...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Error logs at error level and returns a new error built from msg.
func (l Logger) Error(msg string, args ...any) error {
	l.log.Error(msg, args...)
	return fmt.Errorf("%s", msg)
}

// ErrMsg is Error without structured context.
func (l Logger) ErrMsg(msg string) error {
	l.log.Error(msg)
	return fmt.Errorf("%s", msg)
}

// Er logs an error without returning one, for fire-and-forget paths.
func (l Logger) Er(msg string, err error, args ...any) {
	l.log.Error(msg, append(args, "error", err)...)
}

// ErMsg logs an error message without returning one.
func (l Logger) ErMsg(msg string, args ...any) {
	l.log.Error(msg, args...)
}
