package bookshop

import (
	"context"
	"time"
)

// Logger interface for purchase logging, query reporting, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting marketplace performance and operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// SpanContext represents an active tracing span that can be finished and updated with attributes.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector interface for collecting distributed tracing information from purchase
// transactions and catalogue queries. This interface follows the same dependency-free pattern
// as MetricsCollector, allowing users to integrate with any tracing backend (OpenTelemetry,
// Jaeger, Zipkin, etc.) by implementing this interface.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

// ContextualLogger interface for context-aware logging with automatic trace correlation.
// This interface follows the same dependency-free pattern as MetricsCollector and
// TracingCollector, allowing users to integrate with any logging backend that supports
// context-based correlation and automatic trace/span ID inclusion.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// observers bundles the optional observability collaborators configured on a
// shop or customer. All fields may be nil; every helper is nil-safe.
type observers struct {
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// logInfo prefers the contextual logger when configured, falling back to the basic logger.
func (o observers) logInfo(ctx context.Context, msg string, args ...any) {
	if o.contextualLogger != nil {
		o.contextualLogger.InfoContext(ctx, msg, args...)
		return
	}

	if o.logger != nil {
		o.logger.Info(msg, args...)
	}
}

// logError prefers the contextual logger when configured, falling back to the basic logger.
func (o observers) logError(ctx context.Context, msg string, args ...any) {
	if o.contextualLogger != nil {
		o.contextualLogger.ErrorContext(ctx, msg, args...)
		return
	}

	if o.logger != nil {
		o.logger.Error(msg, args...)
	}
}

// recordDuration is a nil-safe wrapper around the metrics collector.
func (o observers) recordDuration(metric string, duration time.Duration, labels map[string]string) {
	if o.metricsCollector != nil {
		o.metricsCollector.RecordDuration(metric, duration, labels)
	}
}

// incrementCounter is a nil-safe wrapper around the metrics collector.
func (o observers) incrementCounter(metric string, labels map[string]string) {
	if o.metricsCollector != nil {
		o.metricsCollector.IncrementCounter(metric, labels)
	}
}

// startSpan is a nil-safe wrapper around the tracing collector.
func (o observers) startSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext) {
	if o.tracingCollector == nil {
		return ctx, nil
	}

	return o.tracingCollector.StartSpan(ctx, name, attrs)
}

// finishSpan is a nil-safe wrapper around the tracing collector.
func (o observers) finishSpan(span SpanContext, status string, attrs map[string]string) {
	if o.tracingCollector != nil && span != nil {
		o.tracingCollector.FinishSpan(span, status, attrs)
	}
}
