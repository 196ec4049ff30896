package main

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/Sumatoshi-tech/past/pkg/cache"
	"github.com/Sumatoshi-tech/past/pkg/config"
	"github.com/Sumatoshi-tech/past/pkg/gitlib"
	"github.com/Sumatoshi-tech/past/pkg/observability"
	"github.com/Sumatoshi-tech/past/pkg/past"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
	"github.com/Sumatoshi-tech/past/pkg/version"
)

// app bundles what every subcommand needs: configuration, telemetry and
// a parser wired to both.
type app struct {
	cfg       *config.Config
	providers observability.Providers
	logger    *slog.Logger
	parser    *past.Parser
	red       *observability.REDMetrics
	files     *cache.FileCache
}

// setup loads configuration and starts telemetry for mode. A non-nil meter
// replaces the one from the OTLP providers, which lets serve feed its
// Prometheus endpoint.
func setup(ctx context.Context, flags *globalFlags, mode observability.AppMode, meter metric.Meter) (*app, error) {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	obsCfg := cfg.ObservabilityFor(mode, version.Version)

	switch {
	case flags.quiet:
		obsCfg.LogLevel = slog.LevelError
	case flags.verbose:
		obsCfg.LogLevel = slog.LevelDebug
	}

	providers, err := observability.Init(ctx, obsCfg)
	if err != nil {
		return nil, fmt.Errorf("init observability: %w", err)
	}

	if meter == nil {
		meter = providers.Meter
	}

	a := &app{cfg: cfg, providers: providers, logger: providers.Logger}

	a.red, err = observability.NewREDMetrics(meter)
	if err != nil {
		return nil, a.failed(ctx, fmt.Errorf("create red metrics: %w", err))
	}

	mapping, err := observability.NewMappingMetrics(meter)
	if err != nil {
		return nil, a.failed(ctx, fmt.Errorf("create mapping metrics: %w", err))
	}

	maxSize, err := cfg.Parser.MaxFileSizeBytes()
	if err != nil {
		return nil, a.failed(ctx, err)
	}

	cacheSize, err := cfg.Parser.CacheSizeBytes()
	if err != nil {
		return nil, a.failed(ctx, err)
	}

	a.files = cache.New(cacheSize)

	a.parser, err = past.NewParser(
		past.WithGrammar(cfg.Parser.Grammar),
		past.WithMaxFileSize(maxSize),
		past.WithLogger(a.logger),
		past.WithTracer(providers.Tracer),
		past.WithMetrics(mapping),
	)
	if err != nil {
		return nil, a.failed(ctx, err)
	}

	return a, nil
}

func (a *app) failed(ctx context.Context, err error) error {
	a.close(ctx)

	return err
}

// parseBlob maps a blob read from git. A blob already mapped in this run is
// reused. A zero id, as for a path missing at a revision, is never cached.
func (a *app) parseBlob(ctx context.Context, id gitlib.Hash, path string, content []byte) (*node.SourceFile, error) {
	if id.IsZero() {
		return a.parser.Parse(ctx, path, content)
	}

	if file := a.files.Get(id, path); file != nil {
		return file, nil
	}

	file, err := a.parser.Parse(ctx, path, content)
	if err != nil {
		return nil, err
	}

	a.files.Put(id, file)

	return file, nil
}

// close flushes telemetry.
func (a *app) close(ctx context.Context) {
	if a.files != nil {
		if stats := a.files.Stats(); stats.Hits+stats.Misses > 0 {
			a.logger.Debug("mapping cache",
				"hits", stats.Hits,
				"misses", stats.Misses,
				"hit_rate", stats.HitRate(),
				"entries", stats.Entries,
			)
		}
	}

	shutdownErr := a.providers.Shutdown(context.WithoutCancel(ctx))
	if shutdownErr != nil {
		a.logger.Warn("observability shutdown failed", "error", shutdownErr)
	}
}
