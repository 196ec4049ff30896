package observability_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/past/pkg/observability"
)

func TestPrometheusHandler_ExposesMappingMetrics(t *testing.T) {
	t.Parallel()

	handler, mp, err := observability.PrometheusHandler()
	require.NoError(t, err)

	t.Cleanup(func() { require.NoError(t, mp.Shutdown(context.Background())) })

	mm, err := observability.NewMappingMetrics(mp.Meter("test"))
	require.NoError(t, err)

	mm.RecordFile(context.Background(), observability.FileStats{
		Grammar: "rust", Outcome: observability.OutcomeMapped, Nodes: 5, Elapsed: time.Millisecond,
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "past_mapping_nodes_total")
}
