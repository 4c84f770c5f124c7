// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package embedding

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Pipeline is the assembled embedder chain:
//
//	query cache -> vector store -> circuit breaker -> provider
//
// Layers are skipped when not configured; hash has no breaker.
type Pipeline struct {
	Embedder

	provider string
	breaker  *BreakerEmbedder
	cached   *CachedEmbedder
	store    *BadgerStore
}

// New builds the pipeline described by cfg.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(cfg Config, logger zerolog.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid embedding config: %w", err)
	}

	p := &Pipeline{provider: cfg.Provider}

	var e Embedder
	switch cfg.Provider {
	case ProviderOllama:
		p.breaker = NewBreakerEmbedder(NewOllamaClient(cfg, logger), cfg.Breaker, logger)
		e = p.breaker
	case ProviderOpenAI:
		p.breaker = NewBreakerEmbedder(NewOpenAIClient(cfg, logger), cfg.Breaker, logger)
		e = p.breaker
	case ProviderHash:
		e = NewHashEmbedder(cfg.Dimension)
	}

	if cfg.StoreDir != "" {
		store, err := OpenBadgerStore(cfg.StoreDir)
		if err != nil {
			return nil, err
		}
		p.store = store
		e = NewStoreEmbedder(e, store, logger)
	}

	if cfg.QueryCacheSize > 0 {
		p.cached = NewCachedEmbedder(e, cfg.QueryCacheSize, cfg.QueryCacheTTL)
		e = p.cached
	}

	p.Embedder = e

	logger.Info().
		Str("provider", cfg.Provider).
		Str("model", e.Model()).
		Int("dimension", e.Dimension()).
		Bool("vector_store", p.store != nil).
		Int("query_cache", cfg.QueryCacheSize).
		Msg("Embedding pipeline ready")
	return p, nil
}

// Provider returns the configured provider name.
func (p *Pipeline) Provider() string { return p.provider }

// BreakerState returns the breaker state, or "" for local providers.
func (p *Pipeline) BreakerState() string {
	if p.breaker == nil {
		return ""
	}
	return p.breaker.State()
}

// Ping checks the remote provider. Local providers always succeed.
func (p *Pipeline) Ping(ctx context.Context) error {
	if pg, ok := p.Embedder.(Pinger); ok {
		return pg.Ping(ctx)
	}
	return nil
}

// Close releases the vector store, if any.
func (p *Pipeline) Close() error {
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}
