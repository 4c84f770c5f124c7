// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
)

// Convention selects how the small-result branch orders ratings.
type Convention string

const (
	// ConventionParity flips the rating direction when ResultLimit or fewer
	// rows survive filtering.
	ConventionParity Convention = "parity"

	// ConventionConsistent uses the preference direction for every result size.
	ConventionConsistent Convention = "consistent"
)

// Valid reports whether c is a known convention.
func (c Convention) Valid() bool {
	return c == ConventionParity || c == ConventionConsistent
}

// Config contains engine tuning and the defaults offered to callers.
type Config struct {
	// CandidatePool is how many of the most similar movies are considered.
	// Default: 15.
	CandidatePool int `json:"candidate_pool"`

	// ResultLimit caps the number of returned movies.
	// Default: 5.
	ResultLimit int `json:"result_limit"`

	// Convention is "parity" (default) or "consistent".
	Convention Convention `json:"ranking_convention"`

	// DefaultText pre-fills the query form.
	DefaultText string `json:"default_text"`

	// DefaultPreference applies when a query leaves Preference empty.
	DefaultPreference Preference `json:"default_preference"`

	// DefaultMinRating pre-fills the query form.
	DefaultMinRating float64 `json:"default_min_rating"`

	// DefaultMinYear pre-fills the query form.
	DefaultMinYear int `json:"default_min_year"`
}

// DefaultConfig returns the stock settings.
func DefaultConfig() *Config {
	return &Config{
		CandidatePool:     15,
		ResultLimit:       5,
		Convention:        ConventionParity,
		DefaultText:       "Sci-fi adventure with space battles",
		DefaultPreference: PreferenceTop,
		DefaultMinRating:  7.0,
		DefaultMinYear:    2000,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.CandidatePool < 1 {
		return fmt.Errorf("candidate_pool must be positive, got %d", c.CandidatePool)
	}
	if c.ResultLimit < 1 {
		return fmt.Errorf("result_limit must be positive, got %d", c.ResultLimit)
	}
	if c.ResultLimit > c.CandidatePool {
		return fmt.Errorf("result_limit must be <= candidate_pool, got %d > %d", c.ResultLimit, c.CandidatePool)
	}
	if !c.Convention.Valid() {
		return fmt.Errorf("ranking_convention must be parity or consistent, got %q", c.Convention)
	}
	if !c.DefaultPreference.Valid() {
		return fmt.Errorf("default_preference must be Top or Bottom, got %q", c.DefaultPreference)
	}
	if c.DefaultMinRating < 0 || c.DefaultMinRating > 10 {
		return fmt.Errorf("default_min_rating must be in [0, 10], got %v", c.DefaultMinRating)
	}
	if c.DefaultMinYear < 0 || c.DefaultMinYear > 9999 {
		return fmt.Errorf("default_min_year must be in [0, 9999], got %d", c.DefaultMinYear)
	}
	return nil
}

// DefaultQuery returns the query a fresh form starts with.
func (c *Config) DefaultQuery() Query {
	return Query{
		Text:       c.DefaultText,
		MinRating:  c.DefaultMinRating,
		MinYear:    c.DefaultMinYear,
		Preference: c.DefaultPreference,
	}
}
