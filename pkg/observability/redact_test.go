package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Sumatoshi-tech/past/pkg/observability"
)

func TestSourceRedactor_StripsSourceText(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(observability.NewSourceRedactor(sdktrace.NewSimpleSpanProcessor(exporter))),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	t.Cleanup(func() { require.NoError(t, tp.Shutdown(context.Background())) })

	_, span := tp.Tracer("test").Start(context.Background(), "parse")
	span.SetAttributes(
		attribute.String("past.path", "src/lib.rs"),
		attribute.Int("past.problems", 1),
		attribute.String("past.source.text", "fn main() {}"),
	)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	keys := make(map[attribute.Key]attribute.Value)
	for _, kv := range spans[0].Attributes {
		keys[kv.Key] = kv.Value
	}

	assert.Equal(t, "src/lib.rs", keys["past.path"].AsString())
	assert.Equal(t, int64(1), keys["past.problems"].AsInt64())
	assert.NotContains(t, keys, attribute.Key("past.source.text"))
}
