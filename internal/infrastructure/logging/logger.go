package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/pagekit/internal/ports"
)

// Options configures the zerolog adapter.
type Options struct {
	Writer        io.Writer
	Level         string
	HumanReadable bool
	Layer         string
	Component     string
}

// Logger implements ports.Logger using zerolog.
type Logger struct {
	base   zerolog.Logger
	fields []interface{}
}

// New creates a Logger with the supplied options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	layer := opts.Layer
	if layer == "" {
		layer = "infrastructure"
	}

	// layer and component stay in fields so With can replace them.
	fields := []interface{}{"layer", layer}
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: base, fields: fields}, nil
}

// Debug emits a debug log entry.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.DebugLevel, msg, fields...)
}

// Info emits an info log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.InfoLevel, msg, fields...)
}

// Warn emits a warning log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.WarnLevel, msg, fields...)
}

// Error emits an error log entry.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.ErrorLevel, msg, fields...)
}

// With derives a new logger with persistent fields. Later values win over
// earlier ones for the same key.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return &NoOpLogger{}
	}
	next := make([]interface{}, 0, len(l.fields)+len(fields))
	next = append(next, l.fields...)
	next = append(next, fields...)
	return &Logger{base: l.base, fields: next}
}

func (l *Logger) log(ctx context.Context, level zerolog.Level, msg string, fields ...interface{}) {
	if l == nil {
		return
	}

	event := l.base.WithLevel(level)
	if !event.Enabled() {
		return
	}

	for _, pair := range mergeFields(l.fields, fields) {
		if err, ok := pair.value.(error); ok {
			event = event.AnErr(pair.key, err)
			continue
		}
		event = event.Interface(pair.key, pair.value)
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		event = event.Str("correlation_id", id)
	}

	event.Msg(msg)
}

type field struct {
	key   string
	value interface{}
}

// mergeFields flattens key/value lists, dropping non-string keys and keeping
// the first position but last value of repeated keys.
func mergeFields(lists ...[]interface{}) []field {
	index := make(map[string]int)
	merged := make([]field, 0)

	for _, values := range lists {
		for i := 0; i+1 < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok || key == "" {
				continue
			}
			if pos, exists := index[key]; exists {
				merged[pos].value = values[i+1]
				continue
			}
			index[key] = len(merged)
			merged = append(merged, field{key: key, value: values[i+1]})
		}
	}

	return merged
}
