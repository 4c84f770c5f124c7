// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/embedding"
)

// scored is a catalog entry with its similarity to the query.
type scored struct {
	movie  *catalog.Movie
	score  float64
	rating float64
	year   float64
}

// before orders by score descending then catalog index ascending.
func (s *scored) before(o *scored) bool {
	if s.score != o.score {
		return s.score > o.score
	}
	return s.movie.Index < o.movie.Index
}

// topCandidates scores every entry against query and returns the k best.
func topCandidates(cat *catalog.Catalog, query embedding.Vector, k int) []scored {
	all := make([]scored, cat.Len())
	for i := range all {
		e := cat.At(i)
		score := embedding.Cosine(query, e.Vector)
		if math.IsNaN(score) {
			score = 0
		}
		m := e.Movie
		all[i] = scored{movie: &m, score: score}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].before(&all[j]) })

	if len(all) > k {
		all = all[:k]
	}
	return all
}

// coerce parses rating and year, dropping rows where either fails.
func coerce(in []scored) (kept []scored, dropped int) {
	kept = make([]scored, 0, len(in))
	for _, s := range in {
		r, okR := s.movie.Rating()
		y, okY := s.movie.Year()
		if !okR || !okY {
			dropped++
			continue
		}
		s.rating, s.year = r, y
		kept = append(kept, s)
	}
	return kept, dropped
}

// filter keeps rows meeting both lower bounds.
func filter(in []scored, minRating float64, minYear int) []scored {
	out := make([]scored, 0, len(in))
	for _, s := range in {
		if s.rating >= minRating && s.year >= float64(minYear) {
			out = append(out, s)
		}
	}
	return out
}

// ratingDescending decides the rating direction for n surviving rows.
func ratingDescending(pref Preference, conv Convention, n, limit int) bool {
	desc := pref == PreferenceTop
	if n <= limit && conv == ConventionParity {
		desc = !desc
	}
	return desc
}

// rank orders rows by rating, then similarity descending, then index, and
// truncates to limit.
func rank(in []scored, pref Preference, conv Convention, limit int) []scored {
	desc := ratingDescending(pref, conv, len(in), limit)

	sort.Slice(in, func(i, j int) bool {
		a, b := &in[i], &in[j]
		if a.rating != b.rating {
			if desc {
				return a.rating > b.rating
			}
			return a.rating < b.rating
		}
		return a.before(b)
	})

	if len(in) > limit {
		in = in[:limit]
	}
	return in
}

func toRecommendation(s *scored) Recommendation {
	m := s.movie
	return Recommendation{
		Title:           m.Title,
		Rating:          s.rating,
		Year:            int(s.year),
		Genre:           m.Genre,
		Director:        m.Director,
		Actor1:          m.Star1,
		Actor2:          m.Star2,
		PosterURL:       m.PosterURL,
		SimilarityScore: s.score,
		Overview:        m.Overview,
		Index:           m.Index,
	}
}
