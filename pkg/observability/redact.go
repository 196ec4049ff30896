package observability

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SourcePrefix is the attribute namespace for raw Rust source text.
const SourcePrefix = "past.source."

// sourceRedactor strips past.source.* attributes before the delegate sees the span.
type sourceRedactor struct {
	delegate sdktrace.SpanProcessor
}

// NewSourceRedactor wraps delegate so exported spans never carry source text.
func NewSourceRedactor(delegate sdktrace.SpanProcessor) sdktrace.SpanProcessor {
	return &sourceRedactor{delegate: delegate}
}

// OnStart delegates.
func (r *sourceRedactor) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	r.delegate.OnStart(parent, s)
}

// OnEnd hands the delegate a redacted view of the span.
func (r *sourceRedactor) OnEnd(s sdktrace.ReadOnlySpan) {
	r.delegate.OnEnd(redactedSpan{ReadOnlySpan: s})
}

// Shutdown delegates.
func (r *sourceRedactor) Shutdown(ctx context.Context) error {
	err := r.delegate.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("source redactor shutdown: %w", err)
	}

	return nil
}

// ForceFlush delegates.
func (r *sourceRedactor) ForceFlush(ctx context.Context) error {
	err := r.delegate.ForceFlush(ctx)
	if err != nil {
		return fmt.Errorf("source redactor flush: %w", err)
	}

	return nil
}

type redactedSpan struct {
	sdktrace.ReadOnlySpan
}

// Attributes drops every key under SourcePrefix.
func (s redactedSpan) Attributes() []attribute.KeyValue {
	orig := s.ReadOnlySpan.Attributes()
	kept := make([]attribute.KeyValue, 0, len(orig))

	for _, kv := range orig {
		if !strings.HasPrefix(string(kv.Key), SourcePrefix) {
			kept = append(kept, kv)
		}
	}

	return kept
}
