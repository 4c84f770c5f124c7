// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Recommender is the part of *recommend.Engine the handlers need.
type Recommender interface {
	Recommend(ctx context.Context, q recommend.Query) (*recommend.Response, error)
	Config() *recommend.Config
	Stats() recommend.EngineStats
}

// EmbeddingStatus reports on the embedding provider. *embedding.Pipeline implements it.
type EmbeddingStatus interface {
	Ping(ctx context.Context) error
	Provider() string
	BreakerState() string
}

// CatalogInfo reports catalog statistics.
type CatalogInfo interface {
	Stats() catalog.Stats
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_recommend.go: JSON recommendation endpoint
//   - handlers_catalog.go: catalog statistics
//   - handlers_health.go: liveness and provider health
//   - handlers_web.go: HTML form and result cards
type Handler struct {
	engine    Recommender
	catalog   CatalogInfo
	embedding EmbeddingStatus
	timeout   time.Duration
	startTime time.Time
	pages     *pageRenderer
	logger    zerolog.Logger
}

// HandlerConfig wires a Handler.
type HandlerConfig struct {
	Engine  Recommender
	Catalog CatalogInfo

	// Embedding is optional; health reports "unknown" for the provider without it.
	Embedding EmbeddingStatus

	// RequestTimeout bounds one recommendation, including the query embedding.
	RequestTimeout time.Duration
}

// NewHandler creates a new API handler.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHandler(cfg HandlerConfig, logger zerolog.Logger) (*Handler, error) {
	if cfg.Engine == nil {
		return nil, errors.New("api: nil recommender")
	}
	if cfg.Catalog == nil {
		return nil, errors.New("api: nil catalog")
	}

	pages, err := newPageRenderer()
	if err != nil {
		return nil, err
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Handler{
		engine:    cfg.Engine,
		catalog:   cfg.Catalog,
		embedding: cfg.Embedding,
		timeout:   timeout,
		startTime: time.Now(),
		pages:     pages,
		logger:    logger.With().Str("component", "api").Logger(),
	}, nil
}

// recommend runs one query under the handler's request timeout.
func (h *Handler) recommend(ctx context.Context, q recommend.Query) (*recommend.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return h.engine.Recommend(ctx, q)
}
