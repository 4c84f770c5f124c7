// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

//go:build integration

package embedding

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/testinfra"
)

func TestOllamaClient_Container(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx := context.Background()
	ollama, err := testinfra.NewOllamaContainer(ctx)
	if err != nil {
		t.Fatalf("start ollama: %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, ollama)

	cfg := DefaultConfig()
	cfg.BaseURL = ollama.URL
	cfg.Model = ollama.Model
	cfg.Timeout = time.Minute
	cfg.QueryCacheSize = 0

	p, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	defer p.Close()

	if err := p.Ping(ctx); err != nil {
		t.Fatalf("Ping() = %v", err)
	}

	texts := []string{
		"A crew travels through a wormhole to save humanity",
		"Astronauts journey across the galaxy in search of a new home",
		"A chef opens a small restaurant in Paris",
	}
	vectors, err := p.EmbedBatch(ctx, texts)
	if err != nil {
		t.Fatalf("EmbedBatch() = %v", err)
	}
	if len(vectors) != len(texts) {
		t.Fatalf("got %d vectors, want %d", len(vectors), len(texts))
	}
	for i, v := range vectors {
		if len(v) != 384 {
			t.Errorf("vector %d has dimension %d, want 384", i, len(v))
		}
	}

	space := Cosine(vectors[0], vectors[1])
	food := Cosine(vectors[0], vectors[2])
	if space <= food {
		t.Errorf("related texts scored %.3f, unrelated %.3f", space, food)
	}
}
