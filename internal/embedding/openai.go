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

type openAIEmbeddingRequest struct {
	Model          string   `json:"model"`
	Input          []string `json:"input"`
	EncodingFormat string   `json:"encoding_format"`
}

type openAIEmbeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Model string `json:"model"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

// OpenAIClient embeds text through an OpenAI-compatible /embeddings endpoint
// (OpenAI itself, vLLM, LocalAI, text-embeddings-inference).
type OpenAIClient struct {
	remote
	logger zerolog.Logger
}

// NewOpenAIClient creates a client from cfg. BaseURL should include the API
// version prefix, e.g. https://api.openai.com/v1.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewOpenAIClient(cfg Config, logger zerolog.Logger) *OpenAIClient {
	return &OpenAIClient{
		remote: newRemote(ProviderOpenAI, cfg),
		logger: logger.With().Str("provider", ProviderOpenAI).Str("model", cfg.Model).Logger(),
	}
}

// Model implements Embedder.
func (c *OpenAIClient) Model() string { return c.model }

// Dimension implements Embedder.
func (c *OpenAIClient) Dimension() int { return c.dim }

// Embed implements Embedder.
func (c *OpenAIClient) Embed(ctx context.Context, text string) (Vector, error) {
	vs, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vs[0], nil
}

// EmbedBatch implements Embedder.
func (c *OpenAIClient) EmbedBatch(ctx context.Context, texts []string) ([]Vector, error) {
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

func (c *OpenAIClient) embedChunk(ctx context.Context, chunk []string) (vs []Vector, err error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		metrics.RecordEmbedding(ProviderOpenAI, len(chunk), time.Since(start), err)
	}()

	req := openAIEmbeddingRequest{Model: c.model, Input: chunk, EncodingFormat: "float"}
	var resp openAIEmbeddingResponse
	if err := c.do(ctx, http.MethodPost, "/embeddings", req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) != len(chunk) {
		return nil, fmt.Errorf("openai returned %d embeddings for %d inputs", len(resp.Data), len(chunk))
	}

	// Data is not guaranteed to arrive in input order.
	vs = make([]Vector, len(chunk))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(chunk) || vs[d.Index] != nil {
			return nil, fmt.Errorf("openai returned invalid embedding index %d", d.Index)
		}
		vs[d.Index] = Vector(d.Embedding)
	}
	if err := checkDimension(vs, c.dim); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("texts", len(chunk)).
		Int("tokens", resp.Usage.TotalTokens).
		Dur("took", time.Since(start)).
		Msg("Embedded batch")
	return vs, nil
}

// Ping lists models to confirm the endpoint and credentials work.
func (c *OpenAIClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/models", nil, nil)
}
