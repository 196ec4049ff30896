package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/past/pkg/observability"
	"github.com/Sumatoshi-tech/past/pkg/past"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

const (
	defaultRequestPath = "input.rs"
	readyProbeSource   = "fn ready() {}\n"
	// maxRequestBytes bounds a request body; JSON escaping can double the code size.
	maxRequestBytes = 2 * past.DefaultMaxFileSize
)

// ParseRequest is the body of POST /api/parse and POST /api/problems.
type ParseRequest struct {
	Code string `json:"code"`
	Path string `json:"path,omitempty"`
}

// ParseResponse is the body answered by POST /api/parse.
type ParseResponse struct {
	File  *node.SourceFile `json:"file,omitempty"`
	Error string           `json:"error,omitempty"`
}

// ProblemsResponse is the body answered by POST /api/problems.
type ProblemsResponse struct {
	Problems []ProblemRecord `json:"problems"`
	Error    string          `json:"error,omitempty"`
}

type serveOptions struct {
	host string
	port int
}

func serveCmd(flags *globalFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the PAST HTTP server",
		Long: `Start an HTTP server that maps Rust source posted to /api/parse.

Endpoints:
  POST /api/parse      {"code": "...", "path": "lib.rs"} -> {"file": {...}}
  POST /api/problems   {"code": "...", "path": "lib.rs"} -> {"problems": [...]}
  GET  /healthz        liveness
  GET  /readyz         readiness (maps a probe file)
  GET  /metrics        Prometheus metrics`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.host, "host", "", "listen host (default: server.host)")
	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "listen port (default: server.port)")

	return cmd
}

func runServe(cmd *cobra.Command, flags *globalFlags, opts *serveOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	metricsHandler, meterProvider, err := observability.PrometheusHandler()
	if err != nil {
		return err
	}

	defer func() {
		_ = meterProvider.Shutdown(context.WithoutCancel(ctx))
	}()

	a, err := setup(ctx, flags, observability.ModeServe, meterProvider.Meter(observability.InstrumentationName))
	if err != nil {
		return err
	}
	defer a.close(ctx)

	serverCfg := a.cfg.Server
	if opts.host != "" {
		serverCfg.Host = opts.host
	}

	if opts.port != 0 {
		serverCfg.Port = opts.port
	}

	server := &http.Server{
		Addr:         serverCfg.Addr(),
		Handler:      newServeMux(a.parser, a.logger, a.providers.Tracer, a.red, metricsHandler),
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		IdleTimeout:  serverCfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)

	go func() {
		a.logger.InfoContext(ctx, "PAST server starting", "addr", "http://"+server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		a.logger.Info("PAST server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), serverCfg.ReadTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}

		return nil
	}
}

// newServeMux routes the API through the tracing middleware; probes and
// metrics bypass it.
func newServeMux(
	parser *past.Parser,
	logger *slog.Logger,
	tracer trace.Tracer,
	red *observability.REDMetrics,
	metricsHandler http.Handler,
) http.Handler {
	api := &apiHandler{parser: parser, logger: logger}

	apiMux := http.NewServeMux()
	apiMux.HandleFunc("POST /api/parse", api.handleParse)
	apiMux.HandleFunc("POST /api/problems", api.handleProblems)

	mux := http.NewServeMux()
	mux.Handle("/api/", observability.HTTPMiddleware(tracer, red, apiMux))
	mux.Handle("GET /healthz", observability.HealthHandler())
	mux.Handle("GET /readyz", observability.ReadyHandler(api.ready))

	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	return mux
}

type apiHandler struct {
	parser *past.Parser
	logger *slog.Logger
}

func (h *apiHandler) ready(ctx context.Context) error {
	_, err := h.parser.Parse(ctx, defaultRequestPath, []byte(readyProbeSource))

	return err
}

// decode reads a ParseRequest and answers 400 itself when the body is bad.
func (h *apiHandler) decode(rw http.ResponseWriter, hr *http.Request) (ParseRequest, bool) {
	var req ParseRequest

	hr.Body = http.MaxBytesReader(rw, hr.Body, maxRequestBytes)

	decodeErr := json.NewDecoder(hr.Body).Decode(&req)
	if decodeErr != nil {
		http.Error(rw, "Invalid request body", http.StatusBadRequest)

		return req, false
	}

	if req.Path == "" {
		req.Path = defaultRequestPath
	}

	return req, true
}

func (h *apiHandler) handleParse(rw http.ResponseWriter, hr *http.Request) {
	req, ok := h.decode(rw, hr)
	if !ok {
		return
	}

	file, err := h.parser.Parse(hr.Context(), req.Path, []byte(req.Code))
	if err != nil {
		h.logger.WarnContext(hr.Context(), "parse request failed", "path", req.Path, "error", err)
		writeJSON(hr.Context(), rw, http.StatusUnprocessableEntity, ParseResponse{Error: err.Error()})

		return
	}

	writeJSON(hr.Context(), rw, http.StatusOK, ParseResponse{File: file})
}

func (h *apiHandler) handleProblems(rw http.ResponseWriter, hr *http.Request) {
	req, ok := h.decode(rw, hr)
	if !ok {
		return
	}

	file, err := h.parser.Parse(hr.Context(), req.Path, []byte(req.Code))
	if err != nil {
		writeJSON(hr.Context(), rw, http.StatusUnprocessableEntity, ProblemsResponse{Problems: []ProblemRecord{}, Error: err.Error()})

		return
	}

	writeJSON(hr.Context(), rw, http.StatusOK, ProblemsResponse{Problems: collectProblems([]*node.SourceFile{file})})
}

// writeJSON encodes value as the response body.
func writeJSON(ctx context.Context, rw http.ResponseWriter, code int, value any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)

	encodeErr := json.NewEncoder(rw).Encode(value)
	if encodeErr != nil {
		slog.Default().ErrorContext(ctx, "failed to encode JSON response", "error", encodeErr)
	}
}
