// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/embedding"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// fakeRecommender records the last query and returns canned results.
type fakeRecommender struct {
	mu    sync.Mutex
	cfg   *recommend.Config
	resp  *recommend.Response
	err   error
	last  recommend.Query
	calls int
}

func newFakeRecommender() *fakeRecommender {
	return &fakeRecommender{
		cfg:  recommend.DefaultConfig(),
		resp: &recommend.Response{Items: []recommend.Recommendation{}},
	}
}

func (f *fakeRecommender) Recommend(_ context.Context, q recommend.Query) (*recommend.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = q
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeRecommender) Config() *recommend.Config { return f.cfg }

func (f *fakeRecommender) Stats() recommend.EngineStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return recommend.EngineStats{Requests: int64(f.calls)}
}

func (f *fakeRecommender) lastQuery() recommend.Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

type fakeCatalog struct {
	stats catalog.Stats
}

func (f fakeCatalog) Stats() catalog.Stats { return f.stats }

type fakeEmbeddingStatus struct {
	provider string
	state    string
	err      error
}

func (f fakeEmbeddingStatus) Ping(context.Context) error { return f.err }
func (f fakeEmbeddingStatus) Provider() string           { return f.provider }
func (f fakeEmbeddingStatus) BreakerState() string       { return f.state }

// sampleMovies is a small catalog; the last row has a non-numeric year.
func sampleMovies() []catalog.Movie {
	return []catalog.Movie{
		{
			Title: "Starfall", Overview: "Rebel pilots fight epic space battles against an empire fleet.",
			Genre: "Sci-Fi, Adventure", Director: "Ana Vega", Star1: "Kai Moreno", Star2: "Lena Ortiz",
			RatingRaw: "9.0", YearRaw: "2010", PosterURL: "https://img.example/starfall.jpg",
		},
		{
			Title: "Paris Letters", Overview: "Two strangers fall in love through letters left in a bookshop.",
			Genre: "Romance", Director: "Claire Dumas", Star1: "Hugo Blanc", Star2: "Marie Roux",
			RatingRaw: "7.4", YearRaw: "2005",
		},
		{
			Title: "Kitchen Rules", Overview: "A chef rebuilds her family restaurant one recipe at a time.",
			Genre: "Drama", Director: "Sam Patel", Star1: "Nina Shah", Star2: "Omar Reed",
			RatingRaw: "7.8", YearRaw: "2016",
		},
		{
			Title: "Lost Reel", Overview: "A restored silent film reveals a forgotten crime.",
			Genre: "Mystery", Director: "Ivo Hart", Star1: "Dana Cole",
			RatingRaw: "8.2", YearRaw: "PG",
		},
	}
}

// newEngineServer serves a real engine over sampleMovies with a hashing embedder.
func newEngineServer(t *testing.T) (http.Handler, *recommend.Engine) {
	t.Helper()

	emb := embedding.NewHashEmbedder(64)
	cat, err := catalog.Build(context.Background(), sampleMovies(), emb, zerolog.Nop())
	if err != nil {
		t.Fatalf("catalog.Build: %v", err)
	}
	eng, err := recommend.NewEngine(cat, emb, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	h, err := NewHandler(HandlerConfig{Engine: eng, Catalog: cat}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	return NewRouter(h, nil).SetupChi(), eng
}

// newFakeServer serves rec through the full router with rate limiting disabled.
func newFakeServer(t *testing.T, rec Recommender, emb EmbeddingStatus) http.Handler {
	t.Helper()

	h, err := NewHandler(HandlerConfig{
		Engine:    rec,
		Catalog:   fakeCatalog{stats: catalog.Stats{Movies: 1000, Malformed: 2, Model: "all-minilm", Dimension: 384}},
		Embedding: emb,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	mw := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitRequests: 0})
	return NewRouter(h, mw).SetupChi()
}

// envelope mirrors APIResponse with the payload left raw.
type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata Metadata        `json:"metadata"`
	Error    *APIError       `json:"error"`
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}
