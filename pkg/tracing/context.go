package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type traceIDKey struct{}

// WithTraceID сохраняет trace ID в context.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

// TraceIDFromContext возвращает trace ID, сохранённый WithTraceID, а если его
// нет, trace ID активного OTel span'а. Пустая строка, если нет ни того, ни другого.
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok && id != "" {
		return id
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return ""
}

// ContextWithOTelTraceID кладёт в context remote span context с заданным
// trace ID, чтобы span'ы клиента продолжили внешний трейс.
// Невалидный traceIDHex возвращает ctx без изменений.
func ContextWithOTelTraceID(ctx context.Context, traceIDHex string) context.Context {
	traceID, err := trace.TraceIDFromHex(traceIDHex)
	if err != nil {
		return ctx
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})
	return trace.ContextWithRemoteSpanContext(ctx, sc)
}
