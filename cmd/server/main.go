// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package main is the entry point for the Reelmatch server.
//
// Reelmatch recommends movies from a fixed catalog by semantic similarity
// between a free-text description and each movie's overview, genre,
// director and stars, then filters by rating and year.
//
// # Startup Order
//
//  1. Configuration: defaults, config.yaml, environment (Koanf v2)
//  2. Logging: zerolog from the loaded settings
//  3. Embedding pipeline: provider, breaker, vector store, query cache
//  4. Catalog: DuckDB reads the dataset, every description is embedded once
//  5. Engine and HTTP router
//  6. Supervisor tree: HTTP server and provider monitor
//
// A catalog that cannot be loaded or embedded is fatal; the server never
// starts with a partial index.
//
// # Example Usage
//
// Local Ollama serving all-minilm:
//
//	ollama pull all-minilm
//	export CATALOG_PATH=./data/imdb_top_1000.csv
//	./reelmatch
//
// Offline, with the deterministic hash embedder:
//
//	export EMBEDDING_PROVIDER=hash
//	./reelmatch
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the root context. The HTTP server drains for
// SHUTDOWN_TIMEOUT and the vector store is closed on the way out.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/reelmatch/internal/api/docs" // swagger docs
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/embedding"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exit.
func run() int {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})
	logger := logging.Logger()

	logger.Info().
		Str("catalog", cfg.Catalog.Path).
		Str("provider", cfg.Embedding.Provider).
		Str("model", cfg.Embedding.Model).
		Str("ranking_convention", cfg.Recommend.RankingConvention).
		Msg("Starting Reelmatch")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipeline, err := embedding.New(buildEmbeddingConfig(cfg), logging.WithComponent("embedding"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize embedding pipeline")
		return 1
	}
	defer func() {
		if err := pipeline.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing vector store")
		}
	}()

	cat, err := loadCatalog(ctx, cfg, pipeline)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build catalog")
		return 1
	}

	engine, err := recommend.NewEngine(cat, pipeline, buildEngineConfig(cfg), logging.WithComponent("recommend"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create recommendation engine")
		return 1
	}

	handlerFn, err := buildRouter(cfg, engine, cat, pipeline)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create API handler")
		return 1
	}
	server := newHTTPServer(cfg, handlerFn)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logging.WithComponent("supervisor")), supervisor.DefaultTreeConfig())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create supervisor tree")
		return 1
	}

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logger))
	if cfg.Embedding.Remote() {
		tree.AddMonitorService(services.NewProviderMonitorService(pipeline, services.ProviderMonitorConfig{}, logger))
	} else {
		metrics.SetProviderUp(pipeline.Provider(), true)
	}

	errCh := tree.ServeBackground(ctx)
	logger.Info().Str("addr", server.Addr).Msg("Reelmatch ready")

	code := 0
	select {
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received, waiting for services to stop")
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Supervisor shutdown error")
			code = 1
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Supervisor tree error")
			code = 1
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logger.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logger.Info().Msg("Reelmatch stopped")
	return code
}

// loadCatalog reads the dataset and embeds every description.
func loadCatalog(ctx context.Context, cfg *config.Config, emb embedding.Embedder) (*catalog.Catalog, error) {
	movies, err := catalog.NewLoader(logging.WithComponent("loader")).Load(ctx, cfg.Catalog.Path, cfg.Catalog.Format)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Build(ctx, movies, emb, logging.WithComponent("catalog"))
	if err != nil {
		return nil, err
	}

	stats := cat.Stats()
	metrics.SetCatalogStats(stats.Movies, stats.Malformed, cat.BuildTime())
	return cat, nil
}
