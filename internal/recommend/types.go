// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"strings"
	"time"
)

// Preference selects which end of the rating scale is favored.
type Preference string

const (
	// PreferenceTop favors highly rated movies.
	PreferenceTop Preference = "Top"
	// PreferenceBottom favors low rated movies.
	PreferenceBottom Preference = "Bottom"
)

// String implements fmt.Stringer.
func (p Preference) String() string { return string(p) }

// Valid reports whether p is Top or Bottom.
func (p Preference) Valid() bool {
	return p == PreferenceTop || p == PreferenceBottom
}

// ParsePreference accepts "top" or "bottom" in any case.
func ParsePreference(s string) (Preference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return PreferenceTop, nil
	case "bottom":
		return PreferenceBottom, nil
	default:
		return "", fmt.Errorf("preference must be Top or Bottom, got %q", s)
	}
}

// Query is one recommendation request.
type Query struct {
	// Text describes what the user wants to watch.
	Text string `json:"text" validate:"nonblank,max=2000" example:"Sci-fi adventure with space battles"`

	// MinRating is the inclusive lower bound on IMDB rating.
	MinRating float64 `json:"min_rating" validate:"gte=0,lte=10" example:"7"`

	// MinYear is the inclusive lower bound on release year.
	MinYear int `json:"min_year" validate:"gte=0,lte=9999" example:"2000"`

	// Preference is Top or Bottom. Empty selects the configured default.
	Preference Preference `json:"preference" validate:"oneof=Top Bottom" example:"Top"`
}

// Recommendation is one ranked movie.
type Recommendation struct {
	Title           string  `json:"title"`
	Rating          float64 `json:"rating"`
	Year            int     `json:"year"`
	Genre           string  `json:"genre"`
	Director        string  `json:"director"`
	Actor1          string  `json:"actor1"`
	Actor2          string  `json:"actor2"`
	PosterURL       string  `json:"poster_url"`
	SimilarityScore float64 `json:"similarity_score"`

	// Informational.
	Overview string `json:"overview,omitempty"`
	Index    int    `json:"index"`
}

// Stars joins the two lead actors for display.
func (r *Recommendation) Stars() string {
	switch {
	case r.Actor1 == "":
		return r.Actor2
	case r.Actor2 == "":
		return r.Actor1
	default:
		return r.Actor1 + ", " + r.Actor2
	}
}

// Response holds the ranked results of one query.
type Response struct {
	// Items is ordered best first and may be empty.
	Items []Recommendation `json:"items"`

	// Metadata contains diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID  string     `json:"request_id"`
	Model      string     `json:"model"`
	Preference Preference `json:"preference"`
	Convention Convention `json:"ranking_convention"`

	// Candidates is how many rows entered coercion from the similarity pool.
	Candidates int `json:"candidates"`

	// Dropped counts candidates whose rating or year was not numeric.
	Dropped int `json:"dropped"`

	// Eligible counts candidates that passed the rating and year filters.
	Eligible int `json:"eligible"`

	LatencyMS int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}
