// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/embedding"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// buildEmbeddingConfig maps application config to the embedding pipeline.
func buildEmbeddingConfig(cfg *config.Config) embedding.Config {
	e := cfg.Embedding
	return embedding.Config{
		Provider:          e.Provider,
		Model:             e.Model,
		BaseURL:           e.BaseURL,
		APIKey:            e.APIKey,
		Dimension:         e.Dimension,
		BatchSize:         e.BatchSize,
		Timeout:           e.Timeout,
		RequestsPerSecond: e.RequestsPerSecond,
		QueryCacheSize:    e.QueryCacheSize,
		QueryCacheTTL:     e.QueryCacheTTL,
		StoreDir:          e.StoreDir,
		Breaker: embedding.BreakerConfig{
			MaxFailures: cfg.CircuitBreaker.MaxFailures,
			Timeout:     cfg.CircuitBreaker.Timeout,
			Interval:    cfg.CircuitBreaker.Interval,
		},
	}
}

// buildEngineConfig maps application config to engine settings.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	r := cfg.Recommend
	engineCfg := recommend.DefaultConfig()
	engineCfg.CandidatePool = r.CandidatePool
	engineCfg.ResultLimit = r.ResultLimit
	engineCfg.Convention = recommend.Convention(r.RankingConvention)
	engineCfg.DefaultPreference = recommend.Preference(r.DefaultPreference)
	engineCfg.DefaultMinRating = r.DefaultMinRating
	engineCfg.DefaultMinYear = r.DefaultMinYear
	if r.DefaultText != "" {
		engineCfg.DefaultText = r.DefaultText
	}
	return engineCfg
}

// buildMiddlewareConfig maps server settings to CORS and rate limiting.
func buildMiddlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	if len(cfg.Server.CORSOrigins) > 0 {
		mw.CORSAllowedOrigins = cfg.Server.CORSOrigins
	}
	mw.RateLimitRequests = cfg.Server.RateLimitRequests
	mw.RateLimitWindow = cfg.Server.RateLimitWindow
	return mw
}

// buildRouter wires the engine into the HTTP handler tree.
func buildRouter(cfg *config.Config, engine *recommend.Engine, cat *catalog.Catalog, pipeline *embedding.Pipeline) (http.Handler, error) {
	handler, err := api.NewHandler(api.HandlerConfig{
		Engine:         engine,
		Catalog:        cat,
		Embedding:      pipeline,
		RequestTimeout: cfg.Embedding.Timeout + 5*time.Second,
	}, logging.WithComponent("api"))
	if err != nil {
		return nil, err
	}
	return api.NewRouter(handler, api.NewChiMiddleware(buildMiddlewareConfig(cfg))).SetupChi(), nil
}

// newHTTPServer applies the configured timeouts.
func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
}
