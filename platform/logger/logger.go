// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRequestID returns a logger with request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("request_id", requestID)),
	}
}

// WithUserID returns a logger with user ID
func (l *Logger) WithUserID(userID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("user_id", userID)),
	}
}

// HTTPRequest logs an HTTP request
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// ValidationFailed logs a message that failed structural validation.
func (l *Logger) ValidationFailed(messageType string, code int, err error) {
	l.Warn("validation_failed",
		slog.String("message_type", messageType),
		slog.Int("code", code),
		slog.String("error", err.Error()),
	)
}

// MessageProcessed logs a successfully handled message operation.
func (l *Logger) MessageProcessed(operation, messageType string, durationMs float64) {
	l.Info("message_processed",
		slog.String("operation", operation),
		slog.String("message_type", messageType),
		slog.Float64("duration_ms", durationMs),
	)
}

// ScenarioError logs sample generation failures.
func (l *Logger) ScenarioError(messageType, scenario string, err error) {
	l.Error("scenario_error",
		slog.String("message_type", messageType),
		slog.String("scenario", scenario),
		slog.String("error", err.Error()),
	)
}

// RateLimitExceeded logs rate limit events
func (l *Logger) RateLimitExceeded(clientIP, path string) {
	l.Warn("rate_limit_exceeded",
		slog.String("client_ip", clientIP),
		slog.String("path", path),
	)
}
