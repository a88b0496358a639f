// Package logging provides Logger implementations for the mplc library.
package logging

import (
	"log/slog"
	"os"

	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// SlogLogger implements types.Logger using Go's standard log/slog package.
type SlogLogger struct {
	logger *slog.Logger
}

// Compile-time assertion that SlogLogger implements Logger.
var _ types.Logger = (*SlogLogger)(nil)

// NewSlog creates a new slog-based logger.
//
// Parameters:
//   - logger: The underlying slog.Logger instance to use
//
// Returns:
//   - *SlogLogger: A new logger instance that wraps the provided slog.Logger
//
// Example:
//
//	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	logger := logging.NewSlog(slog.New(handler))
//	logger.Info("scenario configured", "partners", 3)
func NewSlog(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger}
}

// NewSlogDefault creates a new slog-based logger backed by slog.Default().
//
// Returns:
//   - *SlogLogger: A new logger instance with default configuration
func NewSlogDefault() *SlogLogger {
	return &SlogLogger{logger: slog.Default()}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs an info-level message with optional key-value pairs.
func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

// Error logs an error-level message with optional key-value pairs.
func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

// Fatal logs a fatal-level message with optional key-value pairs and exits.
//
// This method logs at Error level (slog doesn't have a Fatal level) and then
// calls os.Exit(1) to terminate the program.
func (l *SlogLogger) Fatal(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
	os.Exit(1) //nolint:revive // Fatal should exit the program
}
