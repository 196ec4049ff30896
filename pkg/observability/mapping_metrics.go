package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricFilesTotal    = "past.mapping.files.total"
	metricNodesTotal    = "past.mapping.nodes.total"
	metricProblemsTotal = "past.mapping.problems.total"
	metricBytesTotal    = "past.mapping.bytes.total"
	metricParseDuration = "past.mapping.parse.duration.seconds"

	attrGrammar = "grammar"
	attrOutcome = "outcome"

	// OutcomeMapped is a file that produced a SourceFile.
	OutcomeMapped = "mapped"
	// OutcomeFailed is a file that could not be read or parsed.
	OutcomeFailed = "failed"
)

var parseBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// FileStats summarizes one mapped file.
type FileStats struct {
	Grammar  string
	Outcome  string
	Bytes    int
	Nodes    int
	Problems int
	Elapsed  time.Duration
}

// MappingMetrics counts files, nodes and Problem placeholders produced by the mapper.
type MappingMetrics struct {
	files    metric.Int64Counter
	nodes    metric.Int64Counter
	problems metric.Int64Counter
	bytes    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMappingMetrics creates the instruments from mt.
func NewMappingMetrics(mt metric.Meter) (*MappingMetrics, error) {
	mm := &MappingMetrics{}

	counters := []struct {
		name, desc, unit string
		dst              *metric.Int64Counter
	}{
		{metricFilesTotal, "Rust files handed to the mapper", "{file}", &mm.files},
		{metricNodesTotal, "PAST nodes produced", "{node}", &mm.nodes},
		{metricProblemsTotal, "Problem nodes produced for unmodeled constructs", "{node}", &mm.problems},
		{metricBytesTotal, "Source bytes mapped", "By", &mm.bytes},
	}

	for _, spec := range counters {
		counter, err := mt.Int64Counter(spec.name, metric.WithDescription(spec.desc), metric.WithUnit(spec.unit))
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", spec.name, err)
		}

		*spec.dst = counter
	}

	duration, err := mt.Float64Histogram(metricParseDuration,
		metric.WithDescription("Time to parse and map one file"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(parseBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricParseDuration, err)
	}

	mm.duration = duration

	return mm, nil
}

// RecordFile records one file. A nil receiver is a no-op.
func (mm *MappingMetrics) RecordFile(ctx context.Context, stats FileStats) {
	if mm == nil {
		return
	}

	grammar := metric.WithAttributes(attribute.String(attrGrammar, stats.Grammar))

	mm.files.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrGrammar, stats.Grammar),
		attribute.String(attrOutcome, stats.Outcome),
	))
	mm.duration.Record(ctx, stats.Elapsed.Seconds(), grammar)

	if stats.Outcome != OutcomeMapped {
		return
	}

	mm.bytes.Add(ctx, int64(stats.Bytes), grammar)
	mm.nodes.Add(ctx, int64(stats.Nodes), grammar)
	mm.problems.Add(ctx, int64(stats.Problems), grammar)
}
