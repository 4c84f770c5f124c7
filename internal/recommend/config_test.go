// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.CandidatePool != 15 || cfg.ResultLimit != 5 {
		t.Errorf("pool/limit = %d/%d, want 15/5", cfg.CandidatePool, cfg.ResultLimit)
	}
	if cfg.Convention != ConventionParity {
		t.Errorf("Convention = %q, want parity", cfg.Convention)
	}

	q := cfg.DefaultQuery()
	if q.Text != "Sci-fi adventure with space battles" || q.MinRating != 7.0 ||
		q.MinYear != 2000 || q.Preference != PreferenceTop {
		t.Errorf("DefaultQuery = %+v", q)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero pool", func(c *Config) { c.CandidatePool = 0 }, "candidate_pool"},
		{"zero limit", func(c *Config) { c.ResultLimit = 0 }, "result_limit must be positive"},
		{"limit above pool", func(c *Config) { c.ResultLimit = 20 }, "result_limit must be <="},
		{"unknown convention", func(c *Config) { c.Convention = "random" }, "ranking_convention"},
		{"bad preference", func(c *Config) { c.DefaultPreference = "middle" }, "default_preference"},
		{"rating too high", func(c *Config) { c.DefaultMinRating = 11 }, "default_min_rating"},
		{"negative year", func(c *Config) { c.DefaultMinYear = -1 }, "default_min_year"},
		{"consistent is valid", func(c *Config) { c.Convention = ConventionConsistent }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
