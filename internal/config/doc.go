// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config provides centralized configuration management for Reelmatch.

# Configuration Sources

LoadWithKoanf layers three sources, later ones winning:
  - Struct defaults (defaultConfig)
  - A YAML file: $CONFIG_PATH, else config.yaml, config.yml,
    /etc/reelmatch/config.yaml or /etc/reelmatch/config.yml
  - Mapped environment variables (see envMappings)

# Configuration Structure

  - CatalogConfig: dataset path and format
  - EmbeddingConfig: provider, model, endpoint, batching, caches
  - CircuitBreakerConfig: breaker around remote embedding calls
  - RecommendConfig: candidate pool, result limit, ranking convention, form defaults
  - ServerConfig: HTTP bind address, timeouts, CORS, rate limiting
  - LoggingConfig: zerolog level, format, caller

# Example YAML

	catalog:
	  path: ./data/imdb_top_1000.csv
	embedding:
	  provider: ollama
	  model: all-minilm
	  base_url: http://localhost:11434
	  store_dir: ./data/vectors
	recommend:
	  ranking_convention: parity
	server:
	  port: 8080
	logging:
	  level: debug
	  format: console

# Validation

Struct tags are checked with go-playground/validator through the validation
package, followed by cross-field rules such as RESULT_LIMIT <= CANDIDATE_POOL
and a well-formed base URL for remote providers.
*/
package config
