package testutil

import (
	"context"
	"strings"
	"sync"
)

// LogRecord represents one captured log call.
type LogRecord struct {
	Level string
	Msg   string
	Args  []any
}

// LoggerSpy is a bookshop.Logger implementation that captures log calls for testing.
// It is safe for concurrent use, matching the concurrency of the code under test.
type LoggerSpy struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewLoggerSpy creates a new LoggerSpy.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{records: make([]LogRecord, 0)}
}

// Debug captures a debug-level log call.
func (s *LoggerSpy) Debug(msg string, args ...any) { s.record("debug", msg, args) }

// Info captures an info-level log call.
func (s *LoggerSpy) Info(msg string, args ...any) { s.record("info", msg, args) }

// Warn captures a warn-level log call.
func (s *LoggerSpy) Warn(msg string, args ...any) { s.record("warn", msg, args) }

// Error captures an error-level log call.
func (s *LoggerSpy) Error(msg string, args ...any) { s.record("error", msg, args) }

// Records returns a copy of all captured log records.
func (s *LoggerSpy) Records() []LogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]LogRecord, len(s.records))
	copy(records, s.records)

	return records
}

// HasRecord reports whether a record with the given level and message substring was captured.
func (s *LoggerSpy) HasRecord(level string, msgContains string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && strings.Contains(record.Msg, msgContains) {
			return true
		}
	}

	return false
}

// CountRecords returns the number of captured records with the given level.
func (s *LoggerSpy) CountRecords(level string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, record := range s.records {
		if record.Level == level {
			count++
		}
	}

	return count
}

// Reset clears all captured records.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

func (s *LoggerSpy) record(level string, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	argsCopy := make([]any, len(args))
	copy(argsCopy, args)

	s.records = append(s.records, LogRecord{Level: level, Msg: msg, Args: argsCopy})
}

// ContextualLoggerSpy is a bookshop.ContextualLogger implementation that captures
// log calls for testing, ignoring the context beyond accepting it.
type ContextualLoggerSpy struct {
	LoggerSpy
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy.
func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

// DebugContext captures a debug-level log call.
func (s *ContextualLoggerSpy) DebugContext(_ context.Context, msg string, args ...any) {
	s.record("debug", msg, args)
}

// InfoContext captures an info-level log call.
func (s *ContextualLoggerSpy) InfoContext(_ context.Context, msg string, args ...any) {
	s.record("info", msg, args)
}

// WarnContext captures a warn-level log call.
func (s *ContextualLoggerSpy) WarnContext(_ context.Context, msg string, args ...any) {
	s.record("warn", msg, args)
}

// ErrorContext captures an error-level log call.
func (s *ContextualLoggerSpy) ErrorContext(_ context.Context, msg string, args ...any) {
	s.record("error", msg, args)
}
