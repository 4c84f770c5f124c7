// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend turns a free-text description into a short ranked list of
// movies from an embedded catalog.
//
// # Pipeline
//
// Each call to Engine.Recommend runs synchronously:
//
//  1. Embed the query text.
//  2. Score every catalog vector by cosine similarity.
//  3. Keep the candidate pool (15 by default) with the highest scores.
//     Equal scores are ordered by catalog index.
//  4. Coerce rating and release year to numbers. Rows where either fails are
//     dropped.
//  5. Keep rows with rating >= MinRating and year >= MinYear.
//  6. Rank by rating then similarity and return at most ResultLimit rows.
//
// # Ranking Conventions
//
// When more than ResultLimit rows survive filtering, Top sorts rating
// descending and Bottom sorts rating ascending. When ResultLimit or fewer
// survive, the "parity" convention (the default) flips that direction, which
// reproduces the behavior of the original recommender. The "consistent"
// convention uses the same direction in both cases. Similarity is always
// descending and catalog index breaks any remaining tie.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cat, embedder, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	resp, err := engine.Recommend(ctx, recommend.Query{
//	    Text:       "Sci-fi adventure with space battles",
//	    MinRating:  7.0,
//	    MinYear:    2000,
//	    Preference: recommend.PreferenceTop,
//	})
//
// # Thread Safety
//
// The catalog is immutable and the engine holds no per-request state, so a
// single Engine serves concurrent callers.
package recommend
