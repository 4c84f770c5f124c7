// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/embedding"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

func testConfig() *config.Config {
	return &config.Config{
		Catalog: config.CatalogConfig{Path: "../../internal/catalog/testdata/movies_sample.csv", Format: "auto"},
		Embedding: config.EmbeddingConfig{
			Provider:  "hash",
			Dimension: 64,
			BatchSize: 16,
			Timeout:   time.Second,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 3, Timeout: time.Second},
		Recommend: config.RecommendConfig{
			CandidatePool:     15,
			ResultLimit:       5,
			RankingConvention: "consistent",
			DefaultPreference: "Bottom",
			DefaultMinRating:  6.5,
			DefaultMinYear:    1990,
		},
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     time.Second,
			WriteTimeout:    2 * time.Second,
			ShutdownTimeout: time.Second,
		},
	}
}

func TestBuildEngineConfig(t *testing.T) {
	got := buildEngineConfig(testConfig())

	if err := got.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if got.Convention != recommend.ConventionConsistent {
		t.Errorf("Convention = %q", got.Convention)
	}
	if got.DefaultPreference != recommend.PreferenceBottom {
		t.Errorf("DefaultPreference = %q", got.DefaultPreference)
	}
	if got.DefaultMinRating != 6.5 || got.DefaultMinYear != 1990 {
		t.Errorf("defaults = %v / %d", got.DefaultMinRating, got.DefaultMinYear)
	}
	if got.DefaultText != recommend.DefaultConfig().DefaultText {
		t.Errorf("empty DefaultText should keep the stock prompt, got %q", got.DefaultText)
	}
}

func TestBuildEmbeddingConfig(t *testing.T) {
	cfg := testConfig()
	got := buildEmbeddingConfig(cfg)

	if err := got.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if got.Breaker.MaxFailures != 3 {
		t.Errorf("Breaker.MaxFailures = %d, want 3", got.Breaker.MaxFailures)
	}
	if got.Provider != embedding.ProviderHash || got.Dimension != 64 {
		t.Errorf("provider/dimension = %s/%d", got.Provider, got.Dimension)
	}
}

func TestBuildMiddlewareConfig(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		wantOrigins int
	}{
		{"no origins keeps same-origin default", nil, 0},
		{"explicit origins", []string{"https://a.example", "https://b.example"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Server.CORSOrigins = tt.origins
			cfg.Server.RateLimitRequests = 7
			cfg.Server.RateLimitWindow = time.Second

			got := buildMiddlewareConfig(cfg)
			if len(got.CORSAllowedOrigins) != tt.wantOrigins {
				t.Errorf("origins = %v", got.CORSAllowedOrigins)
			}
			if got.RateLimitRequests != 7 || got.RateLimitWindow != time.Second {
				t.Errorf("rate limit = %d per %s", got.RateLimitRequests, got.RateLimitWindow)
			}
		})
	}
}

func TestWiring_EndToEnd(t *testing.T) {
	cfg := testConfig()

	pipeline, err := embedding.New(buildEmbeddingConfig(cfg), zerolog.Nop())
	if err != nil {
		t.Fatalf("embedding.New() = %v", err)
	}
	defer pipeline.Close()

	cat, err := loadCatalog(context.Background(), cfg, pipeline)
	if err != nil {
		t.Fatalf("loadCatalog() = %v", err)
	}
	if cat.Len() == 0 {
		t.Fatal("catalog is empty")
	}

	engine, err := recommend.NewEngine(cat, pipeline, buildEngineConfig(cfg), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() = %v", err)
	}
	handler, err := buildRouter(cfg, engine, cat, pipeline)
	if err != nil {
		t.Fatalf("buildRouter() = %v", err)
	}

	srv := newHTTPServer(cfg, handler)
	if srv.Addr != "127.0.0.1:8080" || srv.WriteTimeout != 2*time.Second {
		t.Errorf("server = %s / %s", srv.Addr, srv.WriteTimeout)
	}

	for _, path := range []string{"/", "/api/v1/health", "/api/v1/catalog"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, rec.Code)
		}
	}

	body := strings.NewReader(`{"text":"space exploration","min_rating":0,"min_year":0}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST recommendations = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"success"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}
