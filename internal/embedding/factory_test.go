// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_HashPipeline(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Provider = ProviderHash
	cfg.Dimension = 64
	cfg.StoreDir = t.TempDir()

	p, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })

	if p.Provider() != ProviderHash || p.Dimension() != 64 {
		t.Errorf("Provider/Dimension = %s/%d", p.Provider(), p.Dimension())
	}
	if p.BreakerState() != "" {
		t.Errorf("hash provider should have no breaker, got %q", p.BreakerState())
	}
	if err := p.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}

	vs, err := p.EmbedBatch(context.Background(), []string{"a b", "c d"})
	if err != nil || len(vs) != 2 {
		t.Fatalf("EmbedBatch = %v, %v", vs, err)
	}
	if n, _ := p.store.Count(p.Model()); n != 2 {
		t.Errorf("store Count = %d, want 2", n)
	}
}

func TestNew_RemoteHasBreaker(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.QueryCacheSize = 0

	p, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.BreakerState() != "closed" {
		t.Errorf("BreakerState = %q, want closed", p.BreakerState())
	}
	if p.Model() != "all-minilm" {
		t.Errorf("Model = %q", p.Model())
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close without store: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"hash needs no URL", func(c *Config) { c.Provider = ProviderHash; c.BaseURL = "" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "bert" }, true},
		{"ollama without URL", func(c *Config) { c.BaseURL = "" }, true},
		{"openai without model", func(c *Config) { c.Provider = ProviderOpenAI; c.Model = "" }, true},
		{"zero dimension", func(c *Config) { c.Dimension = 0 }, true},
		{"zero batch", func(c *Config) { c.BatchSize = 0 }, true},
		{"negative rps", func(c *Config) { c.RequestsPerSecond = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Provider = "word2vec"
	_, err := New(cfg, zerolog.Nop())
	if !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("expected ErrUnknownProvider, got %v", err)
	}
}
