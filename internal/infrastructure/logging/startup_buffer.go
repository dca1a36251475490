package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/pagekit/internal/ports"
)

const defaultStartupLimit = 256

type startupLevel int

const (
	startupDebug startupLevel = iota
	startupInfo
	startupWarn
	startupError
)

type startupEntry struct {
	ctx    context.Context
	level  startupLevel
	msg    string
	fields []interface{}
}

type startupEntries struct {
	mu      sync.Mutex
	limit   int
	entries []startupEntry
}

// StartupLogger holds entries logged while settings are still loading, before
// the configured logger exists. Flush replays them in order. When the limit is
// reached the oldest entries are dropped.
type StartupLogger struct {
	shared *startupEntries
	fields []interface{}
}

// NewStartupLogger creates a startup logger holding at most limit entries.
func NewStartupLogger(limit int) *StartupLogger {
	if limit <= 0 {
		limit = defaultStartupLimit
	}
	return &StartupLogger{shared: &startupEntries{limit: limit}}
}

// Debug implements ports.Logger.
func (l *StartupLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, startupDebug, msg, fields)
}

// Info implements ports.Logger.
func (l *StartupLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, startupInfo, msg, fields)
}

// Warn implements ports.Logger.
func (l *StartupLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, startupWarn, msg, fields)
}

// Error implements ports.Logger.
func (l *StartupLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, startupError, msg, fields)
}

// With implements ports.Logger. Children record into the same buffer.
func (l *StartupLogger) With(fields ...interface{}) ports.Logger {
	next := append(append([]interface{}{}, l.fields...), fields...)
	return &StartupLogger{shared: l.shared, fields: next}
}

// Len returns the number of entries waiting to be flushed.
func (l *StartupLogger) Len() int {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	return len(l.shared.entries)
}

// Flush replays and clears every held entry through delegate.
func (l *StartupLogger) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}

	l.shared.mu.Lock()
	entries := l.shared.entries
	l.shared.entries = nil
	l.shared.mu.Unlock()

	for _, entry := range entries {
		switch entry.level {
		case startupDebug:
			delegate.Debug(entry.ctx, entry.msg, entry.fields...)
		case startupWarn:
			delegate.Warn(entry.ctx, entry.msg, entry.fields...)
		case startupError:
			delegate.Error(entry.ctx, entry.msg, entry.fields...)
		default:
			delegate.Info(entry.ctx, entry.msg, entry.fields...)
		}
	}
}

func (l *StartupLogger) record(ctx context.Context, level startupLevel, msg string, fields []interface{}) {
	if l == nil || l.shared == nil {
		return
	}

	entry := startupEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: append(append([]interface{}{}, l.fields...), fields...),
	}

	s := l.shared
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == s.limit {
		s.entries = append(s.entries[:0], s.entries[1:]...)
	}
	s.entries = append(s.entries, entry)
}
