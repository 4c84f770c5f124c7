// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/reelmatch/config.yaml",
	"/etc/reelmatch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:   "./data/imdb_top_1000.csv",
			Format: "auto",
		},
		Embedding: EmbeddingConfig{
			Provider:          "ollama",
			Model:             "all-minilm", // sentence-transformers/all-MiniLM-L6-v2
			BaseURL:           "http://localhost:11434",
			Dimension:         384,
			BatchSize:         64,
			Timeout:           30 * time.Second,
			RequestsPerSecond: 20,
			QueryCacheSize:    512,
			QueryCacheTTL:     30 * time.Minute,
			StoreDir:          "", // Disabled: catalog is re-embedded on every start
		},
		CircuitBreaker: CircuitBreakerConfig{
			MaxFailures: 5,
			Timeout:     30 * time.Second,
			Interval:    time.Minute,
		},
		Recommend: RecommendConfig{
			CandidatePool:     15,
			ResultLimit:       5,
			RankingConvention: "parity",
			DefaultText:       "Sci-fi adventure with space battles",
			DefaultPreference: "Top",
			DefaultMinRating:  7.0,
			DefaultMinYear:    2000,
		},
		Server: ServerConfig{
			Host:              "127.0.0.1",
			Port:              8080,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      60 * time.Second, // First query may wait on a cold model
			ShutdownTimeout:   10 * time.Second,
			CORSOrigins:       []string{},
			RateLimitRequests: 60,
			RateLimitWindow:   time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
//
// The result is validated before it is returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// CATALOG_PATH -> catalog.path, OLLAMA_URL -> embedding.base_url
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH if it exists, else the first existing
// default path, else "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings, YAML lists arrive as slices and are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		trimmed := make([]string, 0)
		for _, p := range strings.Split(strVal, ",") {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Unlisted variables are ignored so unrelated environment cannot leak in.
var envMappings = map[string]string{
	// Catalog
	"catalog_path":   "catalog.path",
	"catalog_format": "catalog.format",

	// Embedding
	"embedding_provider":   "embedding.provider",
	"embedding_model":      "embedding.model",
	"ollama_url":           "embedding.base_url",
	"embedding_base_url":   "embedding.base_url",
	"openai_api_key":       "embedding.api_key",
	"embedding_api_key":    "embedding.api_key",
	"embedding_dimension":  "embedding.dimension",
	"embedding_batch_size": "embedding.batch_size",
	"embedding_timeout":    "embedding.timeout",
	"embedding_rps":        "embedding.requests_per_second",
	"query_cache_size":     "embedding.query_cache_size",
	"query_cache_ttl":      "embedding.query_cache_ttl",
	"embedding_store_dir":  "embedding.store_dir",

	// Circuit breaker
	"breaker_max_failures": "circuit_breaker.max_failures",
	"breaker_timeout":      "circuit_breaker.timeout",
	"breaker_interval":     "circuit_breaker.interval",

	// Recommendation
	"candidate_pool":     "recommend.candidate_pool",
	"result_limit":       "recommend.result_limit",
	"ranking_convention": "recommend.ranking_convention",
	"default_query":      "recommend.default_text",
	"default_preference": "recommend.default_preference",
	"default_min_rating": "recommend.default_min_rating",
	"default_min_year":   "recommend.default_min_year",

	// Server
	"http_host":           "server.host",
	"http_port":           "server.port",
	"http_read_timeout":   "server.read_timeout",
	"http_write_timeout":  "server.write_timeout",
	"shutdown_timeout":    "server.shutdown_timeout",
	"cors_origins":        "server.cors_origins",
	"rate_limit_requests": "server.rate_limit_requests",
	"rate_limit_window":   "server.rate_limit_window",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Returning "" skips the variable.
//
// Examples:
//   - CATALOG_PATH -> catalog.path
//   - OLLAMA_URL -> embedding.base_url
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
