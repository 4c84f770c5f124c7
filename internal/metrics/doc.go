// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics defines Reelmatch's Prometheus collectors.

Collectors are registered on the default registry through promauto and
served by promhttp at /metrics.

# Recommendations

  - reelmatch_recommend_duration_seconds{preference}: end-to-end latency
  - reelmatch_recommend_results: results per request
  - reelmatch_recommend_empty_total: requests with no surviving candidate
  - reelmatch_recommend_errors_total{reason}: invalid_query or embedding
  - reelmatch_candidates_dropped_total: candidates with a non-numeric rating or year

# Catalog

  - reelmatch_catalog_movies
  - reelmatch_catalog_malformed_rows
  - reelmatch_catalog_build_duration_seconds

# Embedding

  - reelmatch_embedding_duration_seconds{provider}
  - reelmatch_embedding_texts_total{provider}
  - reelmatch_embedding_errors_total{provider}
  - reelmatch_embedding_cache_hits_total{cache}, reelmatch_embedding_cache_misses_total{cache}
  - reelmatch_embedding_provider_up{provider}: last provider health check

# Circuit Breaker

  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

# HTTP

api_requests_total and api_request_duration_seconds are labeled with the
chi route pattern, not the raw path, so label cardinality stays bounded.

Example scrape config:

	scrape_configs:
	  - job_name: 'reelmatch'
	    static_configs:
	      - targets: ['localhost:8080']
*/
package metrics
