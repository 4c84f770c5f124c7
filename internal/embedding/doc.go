// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package embedding maps text to fixed-dimension vectors for semantic search.

# Providers

  - ollama: POST /api/embed on a local Ollama server. The default model,
    all-minilm, is the Ollama build of sentence-transformers/all-MiniLM-L6-v2
    (384 dimensions).
  - openai: any OpenAI-compatible POST /embeddings endpoint.
  - hash: offline signed feature hashing over word unigrams and bigrams.
    Deterministic, dependency-free, and what the tests use.

# Decorators

New assembles the configured chain:

	CachedEmbedder   in-memory LRU for single-text (query) embeddings
	StoreEmbedder    badger-backed vectors for batch (catalog) embeddings
	BreakerEmbedder  gobreaker circuit breaker around remote providers
	provider

Remote providers are rate limited with golang.org/x/time/rate and validate
every returned vector against the configured dimension.

# Usage

	pipe, err := embedding.New(cfg, logger)
	if err != nil {
	    return err
	}
	defer pipe.Close()

	v, err := pipe.Embed(ctx, "Sci-fi adventure with space battles")
	score := embedding.Cosine(v, movieVector)
*/
package embedding
