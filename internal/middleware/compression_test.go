// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

const payload = "Sci-fi adventure with space battles"

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, payload)
	})
}

func TestCompression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		path         string
		acceptEncode string
		wantGzip     bool
	}{
		{"gzip accepted", "/", "gzip, deflate", true},
		{"no accept header", "/", "", false},
		{"metrics excluded", "/metrics", "gzip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptEncode != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncode)
			}
			rec := httptest.NewRecorder()
			Compression(echoHandler()).ServeHTTP(rec, req)

			gotGzip := rec.Header().Get("Content-Encoding") == "gzip"
			if gotGzip != tt.wantGzip {
				t.Fatalf("Content-Encoding gzip = %v, want %v", gotGzip, tt.wantGzip)
			}

			var body io.Reader = rec.Body
			if gotGzip {
				zr, err := gzip.NewReader(rec.Body)
				if err != nil {
					t.Fatalf("gzip reader: %v", err)
				}
				defer zr.Close()
				body = zr
			}
			data, err := io.ReadAll(body)
			if err != nil {
				t.Fatalf("read body: %v", err)
			}
			if string(data) != payload {
				t.Errorf("body = %q, want %q", data, payload)
			}
		})
	}
}
