// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package embedding

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

// BreakerEmbedder guards a remote Embedder with a circuit breaker. Once
// MaxFailures consecutive calls fail, calls are rejected with
// ErrProviderUnavailable until Timeout elapses and a probe succeeds.
//
// The breaker runs on wall-clock time inside gobreaker; tests that need to
// observe recovery wait out a short Timeout.
type BreakerEmbedder struct {
	next   Embedder
	cb     *gobreaker.CircuitBreaker[[]Vector]
	name   string
	logger zerolog.Logger
}

// NewBreakerEmbedder wraps next.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBreakerEmbedder(next Embedder, cfg BreakerConfig, logger zerolog.Logger) *BreakerEmbedder {
	name := "embedding-" + next.Model()
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	b := &BreakerEmbedder{
		next:   next,
		name:   name,
		logger: logger.With().Str("breaker", name).Logger(),
	}

	b.cb = gobreaker.NewCircuitBreaker[[]Vector](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= maxFailures
			if trip {
				b.logger.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("Opening circuit")
			}
			return trip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			b.logger.Info().Str("from", stateToString(from)).Str("to", stateToString(to)).Msg("Circuit state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, stateToString(from), stateToString(to)).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
		// A caller giving up is not a provider failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return b
}

// Model implements Embedder.
func (b *BreakerEmbedder) Model() string { return b.next.Model() }

// Dimension implements Embedder.
func (b *BreakerEmbedder) Dimension() int { return b.next.Dimension() }

// State returns the breaker state as "closed", "half-open" or "open".
func (b *BreakerEmbedder) State() string { return stateToString(b.cb.State()) }

// Embed implements Embedder.
func (b *BreakerEmbedder) Embed(ctx context.Context, text string) (Vector, error) {
	vs, err := b.execute(func() ([]Vector, error) {
		v, err := b.next.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		return []Vector{v}, nil
	})
	if err != nil {
		return nil, err
	}
	return vs[0], nil
}

// EmbedBatch implements Embedder.
func (b *BreakerEmbedder) EmbedBatch(ctx context.Context, texts []string) ([]Vector, error) {
	return b.execute(func() ([]Vector, error) {
		return b.next.EmbedBatch(ctx, texts)
	})
}

// Ping forwards to the wrapped embedder when it supports health checks.
func (b *BreakerEmbedder) Ping(ctx context.Context) error {
	if p, ok := b.next.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (b *BreakerEmbedder) execute(fn func() ([]Vector, error)) ([]Vector, error) {
	vs, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return vs, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
