// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package embedding

import (
	"context"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// CachedEmbedder memoizes single-text Embed calls (user queries) in an
// in-memory LRU. Batch calls pass straight through.
type CachedEmbedder struct {
	next  Embedder
	cache *cache.LRU[string, Vector]
}

// NewCachedEmbedder wraps next with an LRU of the given size and TTL.
func NewCachedEmbedder(next Embedder, size int, ttl time.Duration) *CachedEmbedder {
	return &CachedEmbedder{
		next:  next,
		cache: cache.NewLRU[string, Vector](size, ttl),
	}
}

// Model implements Embedder.
func (c *CachedEmbedder) Model() string { return c.next.Model() }

// Dimension implements Embedder.
func (c *CachedEmbedder) Dimension() int { return c.next.Dimension() }

// Embed implements Embedder. Cached vectors are cloned on the way out.
func (c *CachedEmbedder) Embed(ctx context.Context, text string) (Vector, error) {
	if v, ok := c.cache.Get(text); ok {
		metrics.RecordCacheLookup("query", true)
		return v.Clone(), nil
	}
	metrics.RecordCacheLookup("query", false)

	v, err := c.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	c.cache.Add(text, v.Clone())
	return v, nil
}

// EmbedBatch implements Embedder.
func (c *CachedEmbedder) EmbedBatch(ctx context.Context, texts []string) ([]Vector, error) {
	return c.next.EmbedBatch(ctx, texts)
}

// Stats exposes the underlying cache counters.
func (c *CachedEmbedder) Stats() cache.Stats {
	return c.cache.Stats()
}

// Ping forwards to the wrapped embedder when it supports health checks.
func (c *CachedEmbedder) Ping(ctx context.Context) error {
	if p, ok := c.next.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
