// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package embedding

import (
	"fmt"
	"time"
)

// Config selects and tunes the embedding pipeline.
type Config struct {
	// Provider is one of ollama, openai, hash.
	Provider string

	// Model is the provider model name (ignored by hash).
	Model string

	// BaseURL of the remote provider.
	BaseURL string

	// APIKey is sent as a bearer token (openai only).
	APIKey string

	// Dimension every vector must have.
	Dimension int

	// BatchSize caps texts per remote request.
	BatchSize int

	// Timeout per remote request.
	Timeout time.Duration

	// RequestsPerSecond limits remote calls; 0 disables limiting.
	RequestsPerSecond float64

	// QueryCacheSize and QueryCacheTTL size the in-memory query cache;
	// a size of 0 disables it.
	QueryCacheSize int
	QueryCacheTTL  time.Duration

	// StoreDir enables the on-disk vector store for catalog descriptions.
	StoreDir string

	Breaker BreakerConfig
}

// BreakerConfig tunes the circuit breaker around remote providers.
type BreakerConfig struct {
	// MaxFailures consecutive failures open the breaker.
	MaxFailures uint32

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration

	// Interval clears counts while closed; 0 never clears.
	Interval time.Duration
}

// DefaultConfig targets a local Ollama serving all-minilm.
func DefaultConfig() Config {
	return Config{
		Provider:          ProviderOllama,
		Model:             "all-minilm",
		BaseURL:           "http://localhost:11434",
		Dimension:         384,
		BatchSize:         64,
		Timeout:           30 * time.Second,
		RequestsPerSecond: 20,
		QueryCacheSize:    512,
		QueryCacheTTL:     30 * time.Minute,
		Breaker: BreakerConfig{
			MaxFailures: 5,
			Timeout:     30 * time.Second,
			Interval:    time.Minute,
		},
	}
}

// Validate checks the settings New depends on.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOllama, ProviderOpenAI:
		if c.BaseURL == "" {
			return fmt.Errorf("embedding base URL is required for provider %q", c.Provider)
		}
		if c.Model == "" {
			return fmt.Errorf("embedding model is required for provider %q", c.Provider)
		}
		if c.BatchSize <= 0 {
			return fmt.Errorf("embedding batch size must be positive, got %d", c.BatchSize)
		}
	case ProviderHash:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
	if c.Dimension <= 0 {
		return fmt.Errorf("embedding dimension must be positive, got %d", c.Dimension)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests per second cannot be negative")
	}
	return nil
}
