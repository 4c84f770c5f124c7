// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package embedding

import (
	"context"
	"hash/fnv"
	"strconv"
	"strings"
	"unicode"
)

const (
	// DefaultHashDimension matches all-MiniLM-L6-v2 so the two providers are
	// interchangeable in configuration.
	DefaultHashDimension = 384

	bigramWeight = 0.5
)

// HashEmbedder is an offline embedder using signed feature hashing over word
// unigrams and bigrams. It has no semantic knowledge beyond shared vocabulary
// but is fully deterministic and needs no model download.
type HashEmbedder struct {
	dim int
}

// NewHashEmbedder returns a hashing embedder. dim <= 0 selects DefaultHashDimension.
func NewHashEmbedder(dim int) *HashEmbedder {
	if dim <= 0 {
		dim = DefaultHashDimension
	}
	return &HashEmbedder{dim: dim}
}

// Model implements Embedder.
func (h *HashEmbedder) Model() string {
	return "feature-hash-" + strconv.Itoa(h.dim)
}

// Dimension implements Embedder.
func (h *HashEmbedder) Dimension() int {
	return h.dim
}

// Embed implements Embedder.
func (h *HashEmbedder) Embed(ctx context.Context, text string) (Vector, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return h.embed(text), nil
}

// EmbedBatch implements Embedder.
func (h *HashEmbedder) EmbedBatch(ctx context.Context, texts []string) ([]Vector, error) {
	out := make([]Vector, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = h.embed(text)
	}
	return out, nil
}

func (h *HashEmbedder) embed(text string) Vector {
	acc := make([]float64, h.dim)
	tokens := tokenize(text)

	for i, tok := range tokens {
		h.add(acc, tok, 1)
		if i > 0 {
			h.add(acc, tokens[i-1]+" "+tok, bigramWeight)
		}
	}

	v := make(Vector, h.dim)
	for i, x := range acc {
		v[i] = float32(x)
	}
	return Normalize(v)
}

// add hashes feature into a bucket; the top bit picks the sign so collisions
// tend to cancel rather than accumulate.
func (h *HashEmbedder) add(acc []float64, feature string, weight float64) {
	f := fnv.New64a()
	_, _ = f.Write([]byte(feature))
	sum := f.Sum64()

	bucket := int(sum % uint64(h.dim))
	if sum>>63 == 1 {
		weight = -weight
	}
	acc[bucket] += weight
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
