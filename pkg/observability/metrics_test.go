package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Sumatoshi-tech/past/pkg/observability"
)

func newTestReader(t *testing.T) (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	t.Cleanup(func() { require.NoError(t, mp.Shutdown(context.Background())) })

	return reader, mp
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics

	require.NoError(t, reader.Collect(context.Background(), &rm))

	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for idx := range rm.ScopeMetrics {
		for midx := range rm.ScopeMetrics[idx].Metrics {
			if rm.ScopeMetrics[idx].Metrics[midx].Name == name {
				return &rm.ScopeMetrics[idx].Metrics[midx]
			}
		}
	}

	return nil
}

func sumOf(t *testing.T, m *metricdata.Metrics) int64 {
	t.Helper()
	require.NotNil(t, m)

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)

	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}

	return total
}

func TestREDMetrics_RecordRequest(t *testing.T) {
	t.Parallel()

	reader, mp := newTestReader(t)

	red, err := observability.NewREDMetrics(mp.Meter("test"))
	require.NoError(t, err)

	red.RecordRequest(context.Background(), "parse_rust_code", observability.StatusOK, 20*time.Millisecond)

	rm := collectMetrics(t, reader)

	assert.Equal(t, int64(1), sumOf(t, findMetric(rm, "past.requests.total")))
	assert.NotNil(t, findMetric(rm, "past.request.duration.seconds"))
	assert.Nil(t, findMetric(rm, "past.errors.total"))
}

func TestREDMetrics_RecordRequestError(t *testing.T) {
	t.Parallel()

	reader, mp := newTestReader(t)

	red, err := observability.NewREDMetrics(mp.Meter("test"))
	require.NoError(t, err)

	red.RecordRequest(context.Background(), "parse_rust_code", observability.StatusError, time.Second)

	assert.Equal(t, int64(1), sumOf(t, findMetric(collectMetrics(t, reader), "past.errors.total")))
}

func TestREDMetrics_TrackInflight(t *testing.T) {
	t.Parallel()

	reader, mp := newTestReader(t)

	red, err := observability.NewREDMetrics(mp.Meter("test"))
	require.NoError(t, err)

	done := red.TrackInflight(context.Background(), "walk")
	assert.Equal(t, int64(1), sumOf(t, findMetric(collectMetrics(t, reader), "past.inflight.requests")))

	done()
	assert.Equal(t, int64(0), sumOf(t, findMetric(collectMetrics(t, reader), "past.inflight.requests")))
}

func TestREDMetrics_NilReceiver(t *testing.T) {
	t.Parallel()

	var red *observability.REDMetrics

	assert.NotPanics(t, func() {
		red.RecordRequest(context.Background(), "op", observability.StatusOK, time.Millisecond)
		red.TrackInflight(context.Background(), "op")()
	})
}

func TestMappingMetrics_RecordFile(t *testing.T) {
	t.Parallel()

	reader, mp := newTestReader(t)

	mm, err := observability.NewMappingMetrics(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	mm.RecordFile(ctx, observability.FileStats{
		Grammar: "rust", Outcome: observability.OutcomeMapped,
		Bytes: 120, Nodes: 30, Problems: 2, Elapsed: time.Millisecond,
	})
	mm.RecordFile(ctx, observability.FileStats{Grammar: "rust", Outcome: observability.OutcomeFailed})

	rm := collectMetrics(t, reader)

	assert.Equal(t, int64(2), sumOf(t, findMetric(rm, "past.mapping.files.total")))
	assert.Equal(t, int64(30), sumOf(t, findMetric(rm, "past.mapping.nodes.total")))
	assert.Equal(t, int64(2), sumOf(t, findMetric(rm, "past.mapping.problems.total")))
	assert.Equal(t, int64(120), sumOf(t, findMetric(rm, "past.mapping.bytes.total")))
	assert.NotNil(t, findMetric(rm, "past.mapping.parse.duration.seconds"))
}

func TestMappingMetrics_NilReceiver(t *testing.T) {
	t.Parallel()

	var mm *observability.MappingMetrics

	assert.NotPanics(t, func() {
		mm.RecordFile(context.Background(), observability.FileStats{Outcome: observability.OutcomeMapped})
	})
}
