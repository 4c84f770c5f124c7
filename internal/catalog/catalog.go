// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/embedding"
)

// ErrEmptyCatalog is returned by Build when given no movies.
var ErrEmptyCatalog = errors.New("catalog has no movies")

// Entry pairs a movie with its description embedding.
type Entry struct {
	Movie  Movie
	Vector embedding.Vector
}

// Stats summarizes a built catalog.
type Stats struct {
	Movies    int       `json:"movies"`
	Malformed int       `json:"malformed_rows"`
	Model     string    `json:"model"`
	Dimension int       `json:"dimension"`
	BuiltAt   time.Time `json:"built_at"`
	BuildTime string    `json:"build_time"`
}

// Catalog is the immutable, ordered set of movies and their embeddings.
type Catalog struct {
	entries   []Entry
	model     string
	dim       int
	malformed int
	builtAt   time.Time
	buildTime time.Duration
}

// Build embeds every movie description with emb and returns the catalog.
// It is the single initialization step; the result is never modified.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Build(ctx context.Context, movies []Movie, emb embedding.Embedder, logger zerolog.Logger) (*Catalog, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}

	start := time.Now()
	texts := make([]string, len(movies))
	for i := range movies {
		texts[i] = movies[i].Description()
	}

	vectors, err := emb.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed catalog: %w", err)
	}
	if len(vectors) != len(movies) {
		return nil, fmt.Errorf("embed catalog: got %d vectors for %d movies", len(vectors), len(movies))
	}

	c := &Catalog{
		entries: make([]Entry, len(movies)),
		model:   emb.Model(),
		dim:     emb.Dimension(),
	}
	for i := range movies {
		if len(vectors[i]) != c.dim {
			return nil, fmt.Errorf("%w: movie %d (%s) has %d dimensions, want %d",
				embedding.ErrDimensionMismatch, i, movies[i].Title, len(vectors[i]), c.dim)
		}
		m := movies[i]
		m.Index = i
		c.entries[i] = Entry{Movie: m, Vector: vectors[i]}
		if !m.Wellformed() {
			c.malformed++
		}
	}
	c.builtAt = time.Now()
	c.buildTime = time.Since(start)

	logger.Info().
		Int("movies", len(c.entries)).
		Int("malformed_rows", c.malformed).
		Str("model", c.model).
		Dur("took", c.buildTime).
		Msg("Catalog built")
	return c, nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int { return len(c.entries) }

// At returns entry i. The returned vector must not be modified.
func (c *Catalog) At(i int) Entry { return c.entries[i] }

// Model returns the embedding model the catalog was built with.
func (c *Catalog) Model() string { return c.model }

// Dimension returns the vector dimension.
func (c *Catalog) Dimension() int { return c.dim }

// Stats returns summary figures.
func (c *Catalog) Stats() Stats {
	return Stats{
		Movies:    len(c.entries),
		Malformed: c.malformed,
		Model:     c.model,
		Dimension: c.dim,
		BuiltAt:   c.builtAt,
		BuildTime: c.buildTime.String(),
	}
}

// BuildTime returns how long embedding the catalog took.
func (c *Catalog) BuildTime() time.Duration { return c.buildTime }
