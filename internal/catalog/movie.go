// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package catalog loads the movie table and pairs every movie with its
// description embedding. A Catalog is built once at startup and never
// mutated afterwards, so it is safe to share across goroutines without
// locking.
package catalog

import (
	"math"
	"strconv"
	"strings"
)

// Movie is one row of the dataset. Rating and year keep their raw text so
// malformed values survive loading and are excluded only at query time.
type Movie struct {
	// Index is the 0-based row position in the source file.
	Index int `json:"index"`

	Title     string `json:"title"`
	Overview  string `json:"overview"`
	Genre     string `json:"genre"`
	Director  string `json:"director"`
	Star1     string `json:"star1"`
	Star2     string `json:"star2"`
	RatingRaw string `json:"rating_raw"`
	YearRaw   string `json:"year_raw"`
	PosterURL string `json:"poster_url"`
}

// Description renders the text that gets embedded for this movie.
func (m *Movie) Description() string {
	return Compose(m.Overview, m.Genre, m.Director, m.Star1, m.Star2)
}

// Compose builds a movie description from its fields. Empty fields render
// as empty strings; the trailing space is part of the format.
func Compose(overview, genre, director, star1, star2 string) string {
	var b strings.Builder
	b.Grow(len(overview) + len(genre) + len(director) + len(star1) + len(star2) + 40)
	b.WriteString("Overview: ")
	b.WriteString(overview)
	b.WriteString(" Genre: ")
	b.WriteString(genre)
	b.WriteString(" Director: ")
	b.WriteString(director)
	b.WriteString(" Stars: ")
	b.WriteString(star1)
	b.WriteString(", ")
	b.WriteString(star2)
	b.WriteString(" ")
	return b.String()
}

// Rating coerces RatingRaw to a number.
func (m *Movie) Rating() (float64, bool) {
	return ParseNumeric(m.RatingRaw)
}

// Year coerces YearRaw to a number.
func (m *Movie) Year() (float64, bool) {
	return ParseNumeric(m.YearRaw)
}

// Wellformed reports whether both rating and year coerce.
func (m *Movie) Wellformed() bool {
	_, okR := m.Rating()
	_, okY := m.Year()
	return okR && okY
}

// ParseNumeric converts s to a finite float. Surrounding whitespace is
// ignored; empty strings, NaN and infinities fail.
func ParseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
