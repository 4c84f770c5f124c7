// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package middleware

import (
	"compress/gzip"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// compressibleTypes lists the response types worth gzipping: API JSON, the
// HTML form and its static assets.
var compressibleTypes = []string{
	"application/json",
	"text/html",
	"text/plain",
	"text/css",
	"application/javascript",
}

var compress = chimw.Compress(gzip.DefaultCompression, compressibleTypes...)

// Compression gzips responses for clients sending Accept-Encoding: gzip.
// /metrics is left alone; promhttp negotiates its own encoding.
func Compression(next http.Handler) http.Handler {
	compressed := compress(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}
		compressed.ServeHTTP(w, r)
	})
}
