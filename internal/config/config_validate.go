// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"net/url"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// Validate checks struct tags first, then the rules that span fields.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateEmbedding(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateServer()
}

// validateEmbedding validates remote provider settings (only for remote providers)
func (c *Config) validateEmbedding() error {
	if !c.Embedding.Remote() {
		return nil
	}
	if c.Embedding.Model == "" {
		return fmt.Errorf("EMBEDDING_MODEL is required when EMBEDDING_PROVIDER=%s", c.Embedding.Provider)
	}
	if c.Embedding.BaseURL == "" {
		return fmt.Errorf("EMBEDDING_BASE_URL is required when EMBEDDING_PROVIDER=%s", c.Embedding.Provider)
	}
	return checkEndpoint("EMBEDDING_BASE_URL", c.Embedding.BaseURL)
}

// validateRecommend validates ranking limits
func (c *Config) validateRecommend() error {
	if c.Recommend.ResultLimit > c.Recommend.CandidatePool {
		return fmt.Errorf("RESULT_LIMIT (%d) must not exceed CANDIDATE_POOL (%d)",
			c.Recommend.ResultLimit, c.Recommend.CandidatePool)
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.RateLimitRequests > 0 && c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when RATE_LIMIT_REQUESTS is set")
	}
	for _, origin := range c.Server.CORSOrigins {
		if origin == "*" && len(c.Server.CORSOrigins) > 1 {
			return fmt.Errorf("CORS_ORIGINS cannot mix \"*\" with explicit origins")
		}
	}
	return nil
}

// checkEndpoint accepts http(s) URLs with a host. Paths are fine since
// OpenAI-compatible APIs live under /v1; query strings are rejected because
// the client appends its own route.
func checkEndpoint(field, raw string) error {
	u, err := url.Parse(raw)
	switch {
	case err != nil:
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("%s must use http or https, got %q", field, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%s is missing a host", field)
	case u.RawQuery != "":
		return fmt.Errorf("%s must not carry query parameters (?%s)", field, u.RawQuery)
	}
	return nil
}
