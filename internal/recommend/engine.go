// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/embedding"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/validation"
)

var (
	// ErrInvalidQuery wraps a *validation.RequestValidationError.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrEmbedding wraps a failure to embed the query text.
	ErrEmbedding = errors.New("query embedding failed")
)

// Engine recommends movies from an immutable catalog.
// It is safe for concurrent use.
type Engine struct {
	catalog  *catalog.Catalog
	embedder embedding.Embedder
	config   *Config
	logger   zerolog.Logger

	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// EngineStats reports request counters.
type EngineStats struct {
	Requests int64 `json:"requests"`
	Errors   int64 `json:"errors"`
}

// NewEngine creates an engine over cat. The embedder must produce vectors of
// the catalog's dimension; normally it is the one the catalog was built with.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, emb embedding.Embedder, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("recommend: nil catalog")
	}
	if emb == nil {
		return nil, errors.New("recommend: nil embedder")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if emb.Dimension() != cat.Dimension() {
		return nil, fmt.Errorf("%w: embedder has %d dimensions, catalog has %d",
			embedding.ErrDimensionMismatch, emb.Dimension(), cat.Dimension())
	}

	return &Engine{
		catalog:  cat,
		embedder: emb,
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine configuration. Callers must not modify it.
func (e *Engine) Config() *Config { return e.config }

// Stats returns request counters.
func (e *Engine) Stats() EngineStats {
	return EngineStats{
		Requests: e.requestCount.Load(),
		Errors:   e.errorCount.Load(),
	}
}

// Recommend returns at most ResultLimit movies for q. An empty Items slice is
// a valid answer. Errors wrap ErrInvalidQuery or ErrEmbedding.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, q Query) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if q.Preference == "" {
		q.Preference = e.config.DefaultPreference
	}

	requestID := logging.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = logging.GenerateRequestID()
	}
	logger := e.logger.With().
		Str("request_id", requestID).
		Str("preference", q.Preference.String()).
		Logger()

	if verr := validation.ValidateStruct(q); verr != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendError("invalid_query")
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, verr)
	}

	vec, err := e.embedder.Embed(ctx, q.Text)
	if err == nil && len(vec) != e.catalog.Dimension() {
		err = fmt.Errorf("%w: query has %d dimensions, catalog has %d",
			embedding.ErrDimensionMismatch, len(vec), e.catalog.Dimension())
	}
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendError("embedding")
		logger.Warn().Err(err).Msg("query embedding failed")
		return nil, fmt.Errorf("%w: %w", ErrEmbedding, err)
	}

	pool := topCandidates(e.catalog, vec, e.config.CandidatePool)
	valid, dropped := coerce(pool)
	if dropped > 0 {
		logger.Debug().Int("dropped", dropped).Msg("candidates with non-numeric rating or year excluded")
	}
	eligible := filter(valid, q.MinRating, q.MinYear)
	ranked := rank(eligible, q.Preference, e.config.Convention, e.config.ResultLimit)

	items := make([]Recommendation, len(ranked))
	for i := range ranked {
		items[i] = toRecommendation(&ranked[i])
	}

	elapsed := time.Since(start)
	metrics.RecordRecommendation(q.Preference.String(), elapsed, len(items), dropped)

	logger.Debug().
		Int("candidates", len(pool)).
		Int("eligible", len(eligible)).
		Int("returned", len(items)).
		Dur("took", elapsed).
		Msg("recommendation complete")

	return &Response{
		Items: items,
		Metadata: ResponseMetadata{
			RequestID:  requestID,
			Model:      e.catalog.Model(),
			Preference: q.Preference,
			Convention: e.config.Convention,
			Candidates: len(pool),
			Dropped:    dropped,
			Eligible:   len(eligible),
			LatencyMS:  elapsed.Milliseconds(),
			Timestamp:  time.Now(),
		},
	}, nil
}
