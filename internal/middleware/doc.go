// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP middleware shared by the Reelmatch router.

Key Components:

  - RequestID: honours or generates X-Request-ID and threads it into the
    logging context so every log line of a request carries request_id
  - PrometheusMetrics: request counts, latency and in-flight gauge, labelled
    by the chi route pattern rather than the raw path
  - Compression: gzip for clients that accept it

All middleware use the func(http.Handler) http.Handler shape so they plug
directly into chi's r.Use.

Usage:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)
*/
package middleware
