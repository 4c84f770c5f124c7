// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package metrics registers Reelmatch's Prometheus collectors on the default
// registry and offers small Record* helpers so callers never touch label
// plumbing directly.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation pipeline
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_recommend_duration_seconds",
			Help:    "End-to-end recommendation latency including query embedding",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"preference"},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmatch_recommend_results",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	RecommendEmpty = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelmatch_recommend_empty_total",
			Help: "Requests where no candidate passed the rating and year filters",
		},
	)

	RecommendErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_recommend_errors_total",
			Help: "Failed recommendation requests",
		},
		[]string{"reason"}, // "invalid_query", "embedding"
	)

	CandidatesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelmatch_candidates_dropped_total",
			Help: "Candidates excluded because rating or year was not numeric",
		},
	)

	// Catalog
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_movies",
			Help: "Movies in the loaded catalog",
		},
	)

	CatalogMalformedRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_malformed_rows",
			Help: "Catalog rows whose rating or year is not numeric",
		},
	)

	CatalogBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_build_duration_seconds",
			Help: "Time spent loading and embedding the catalog at startup",
		},
	)

	// Embedding providers
	EmbeddingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_embedding_duration_seconds",
			Help:    "Embedding provider call latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider"},
	)

	EmbeddingTexts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_embedding_texts_total",
			Help: "Texts sent to an embedding provider",
		},
		[]string{"provider"},
	)

	EmbeddingErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_embedding_errors_total",
			Help: "Failed embedding provider calls",
		},
		[]string{"provider"},
	)

	// Caches
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_embedding_cache_hits_total",
			Help: "Embedding cache hits",
		},
		[]string{"cache"}, // "query", "store"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_embedding_cache_misses_total",
			Help: "Embedding cache misses",
		},
		[]string{"cache"},
	)

	EmbeddingProviderUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reelmatch_embedding_provider_up",
			Help: "Whether the last health check of the embedding provider succeeded (1) or failed (0)",
		},
		[]string{"provider"},
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "In-flight API requests",
		},
	)
)

// RecordRecommendation records one successful recommendation.
func RecordRecommendation(preference string, duration time.Duration, results, dropped int) {
	RecommendDuration.WithLabelValues(preference).Observe(duration.Seconds())
	RecommendResults.Observe(float64(results))
	if results == 0 {
		RecommendEmpty.Inc()
	}
	if dropped > 0 {
		CandidatesDropped.Add(float64(dropped))
	}
}

// RecordRecommendError counts a failed recommendation by reason.
func RecordRecommendError(reason string) {
	RecommendErrors.WithLabelValues(reason).Inc()
}

// RecordEmbedding records one provider call covering texts inputs.
func RecordEmbedding(provider string, texts int, duration time.Duration, err error) {
	EmbeddingDuration.WithLabelValues(provider).Observe(duration.Seconds())
	if err != nil {
		EmbeddingErrors.WithLabelValues(provider).Inc()
		return
	}
	EmbeddingTexts.WithLabelValues(provider).Add(float64(texts))
}

// RecordCacheLookup counts a hit or miss on the named embedding cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
		return
	}
	CacheMisses.WithLabelValues(cache).Inc()
}

// RecordCacheCounts adds bulk hit and miss counts for the named cache.
func RecordCacheCounts(cache string, hits, misses int) {
	if hits > 0 {
		CacheHits.WithLabelValues(cache).Add(float64(hits))
	}
	if misses > 0 {
		CacheMisses.WithLabelValues(cache).Add(float64(misses))
	}
}

// SetProviderUp records the result of a provider health check.
func SetProviderUp(provider string, up bool) {
	v := 0.0
	if up {
		v = 1
	}
	EmbeddingProviderUp.WithLabelValues(provider).Set(v)
}

// SetCatalogStats publishes catalog size figures after startup.
func SetCatalogStats(movies, malformed int, build time.Duration) {
	CatalogMovies.Set(float64(movies))
	CatalogMalformedRows.Set(float64(malformed))
	CatalogBuildDuration.Set(build.Seconds())
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
		return
	}
	APIActiveRequests.Dec()
}
