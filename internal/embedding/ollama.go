// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package embedding

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

type ollamaEmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type ollamaEmbedResponse struct {
	Model      string      `json:"model"`
	Embeddings [][]float32 `json:"embeddings"`
}

type ollamaVersionResponse struct {
	Version string `json:"version"`
}

// OllamaClient embeds text through a local Ollama server's /api/embed endpoint.
type OllamaClient struct {
	remote
	logger zerolog.Logger
}

// NewOllamaClient creates a client from cfg.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewOllamaClient(cfg Config, logger zerolog.Logger) *OllamaClient {
	return &OllamaClient{
		remote: newRemote(ProviderOllama, cfg),
		logger: logger.With().Str("provider", ProviderOllama).Str("model", cfg.Model).Logger(),
	}
}

// Model implements Embedder.
func (c *OllamaClient) Model() string { return c.model }

// Dimension implements Embedder.
func (c *OllamaClient) Dimension() int { return c.dim }

// Embed implements Embedder.
func (c *OllamaClient) Embed(ctx context.Context, text string) (Vector, error) {
	vs, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vs[0], nil
}

// EmbedBatch implements Embedder. Texts are sent in BatchSize chunks and
// results keep input order.
func (c *OllamaClient) EmbedBatch(ctx context.Context, texts []string) ([]Vector, error) {
	out := make([]Vector, 0, len(texts))
	for _, chunk := range c.chunks(texts) {
		vs, err := c.embedChunk(ctx, chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}
	return out, nil
}

func (c *OllamaClient) embedChunk(ctx context.Context, chunk []string) (vs []Vector, err error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		metrics.RecordEmbedding(ProviderOllama, len(chunk), time.Since(start), err)
	}()

	var resp ollamaEmbedResponse
	if err := c.do(ctx, http.MethodPost, "/api/embed", ollamaEmbedRequest{Model: c.model, Input: chunk}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Embeddings) != len(chunk) {
		return nil, fmt.Errorf("ollama returned %d embeddings for %d inputs", len(resp.Embeddings), len(chunk))
	}

	vs = make([]Vector, len(resp.Embeddings))
	for i, e := range resp.Embeddings {
		vs[i] = Vector(e)
	}
	if err := checkDimension(vs, c.dim); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("texts", len(chunk)).Dur("took", time.Since(start)).Msg("Embedded batch")
	return vs, nil
}

// Ping checks that the Ollama server answers /api/version.
func (c *OllamaClient) Ping(ctx context.Context) error {
	var v ollamaVersionResponse
	if err := c.do(ctx, http.MethodGet, "/api/version", nil, &v); err != nil {
		return err
	}
	c.logger.Debug().Str("version", v.Version).Msg("Ollama reachable")
	return nil
}
