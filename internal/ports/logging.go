package ports

import (
	"context"

	"github.com/google/uuid"
)

// Logger defines pagekit's structured logging contract. All log calls take
// key/value pairs, must be safe for concurrent use, and should automatically
// enrich entries with a correlation ID when one is present in the context.
// Common fields include:
//   - correlation_id (UUIDv4, generated once per command or page session)
//   - layer (domain|application|infrastructure)
//   - component (page, preferences, config, tui, etc.)
//   - field / theme for page events
//
// Field values typed into the form are never logged.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type correlationIDKey struct{}

// WithCorrelationID attaches the provided correlation ID to the context so
// downstream layers can emit correlated logs.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID extracts a correlation ID from context. It returns an empty
// string when none has been set; callers treat that as "uncorrelated".
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID produces a new UUIDv4 string suitable for log
// correlation.
func GenerateCorrelationID() string {
	return uuid.NewString()
}
