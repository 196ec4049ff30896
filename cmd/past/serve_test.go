package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Sumatoshi-tech/past/pkg/observability"
	"github.com/Sumatoshi-tech/past/pkg/past"
)

func newTestMux(t *testing.T) http.Handler {
	t.Helper()

	metricsHandler, mp, err := observability.PrometheusHandler()
	require.NoError(t, err)

	meter := mp.Meter(observability.InstrumentationName)

	red, err := observability.NewREDMetrics(meter)
	require.NoError(t, err)

	mapping, err := observability.NewMappingMetrics(meter)
	require.NoError(t, err)

	parser, err := past.NewParser(past.WithMetrics(mapping))
	require.NoError(t, err)

	return newServeMux(parser, slog.New(slog.DiscardHandler), noop.NewTracerProvider().Tracer("test"), red, metricsHandler)
}

func post(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestServe_Parse(t *testing.T) {
	t.Parallel()

	rec := post(t, newTestMux(t), "/api/parse", ParseRequest{Code: "/// Doc.\nfn f() {}\n", Path: "lib.rs"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		File  map[string]any `json:"file"`
		Error string         `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Empty(t, body.Error)
	assert.Equal(t, "lib.rs", body.File["path"])

	items, ok := body.File["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "Function", items[0].(map[string]any)["kind"])
}

func TestServe_ParseDefaultsPath(t *testing.T) {
	t.Parallel()

	rec := post(t, newTestMux(t), "/api/parse", ParseRequest{Code: "struct S;"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":"input.rs"`)
}

func TestServe_Problems(t *testing.T) {
	t.Parallel()

	rec := post(t, newTestMux(t), "/api/problems", ParseRequest{Code: "fn f() {}\nlet x = 1;\n"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body ProblemsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Problems, 1)
	assert.Equal(t, 2, body.Problems[0].Line)
	assert.Equal(t, "let x = 1;", body.Problems[0].Text)
}

func TestServe_BadRequests(t *testing.T) {
	t.Parallel()

	handler := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/parse", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServe_ProbesAndMetrics(t *testing.T) {
	t.Parallel()

	handler := newTestMux(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String(), path)
	}

	post(t, handler, "/api/parse", ParseRequest{Code: "fn f() {}"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "past_mapping_files_total")
}
