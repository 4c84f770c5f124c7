// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Config is immutable after LoadWithKoanf and safe for concurrent reads.
type Config struct {
	Catalog        CatalogConfig        `koanf:"catalog"`
	Embedding      EmbeddingConfig      `koanf:"embedding"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	Recommend      RecommendConfig      `koanf:"recommend"`
	Server         ServerConfig         `koanf:"server"`
	Logging        LoggingConfig        `koanf:"logging"`
}

// CatalogConfig locates the movie dataset.
//
// Environment Variables:
//   - CATALOG_PATH: Dataset file (default: ./data/imdb_top_1000.csv)
//   - CATALOG_FORMAT: auto, csv or parquet (default: auto)
type CatalogConfig struct {
	Path   string `koanf:"path" validate:"required"`
	Format string `koanf:"format" validate:"oneof=auto csv parquet"`
}

// EmbeddingConfig selects the text embedding provider.
//
// Environment Variables:
//   - EMBEDDING_PROVIDER: ollama, openai or hash (default: ollama)
//   - EMBEDDING_MODEL: Model name (default: all-minilm)
//   - OLLAMA_URL / EMBEDDING_BASE_URL: Provider base URL (default: http://localhost:11434)
//   - OPENAI_API_KEY / EMBEDDING_API_KEY: Bearer token for openai-compatible APIs
//   - EMBEDDING_DIMENSION: Vector dimension (default: 384)
//   - EMBEDDING_BATCH_SIZE: Texts per request (default: 64)
//   - EMBEDDING_TIMEOUT: Per-request timeout (default: 30s)
//   - EMBEDDING_RPS: Request rate limit, 0 disables (default: 20)
//   - QUERY_CACHE_SIZE: Cached query embeddings, 0 disables (default: 512)
//   - QUERY_CACHE_TTL: Query cache entry lifetime (default: 30m)
//   - EMBEDDING_STORE_DIR: Badger directory caching catalog vectors (default: disabled)
type EmbeddingConfig struct {
	Provider          string        `koanf:"provider" validate:"oneof=ollama openai hash"`
	Model             string        `koanf:"model"`
	BaseURL           string        `koanf:"base_url"`
	APIKey            string        `koanf:"api_key"`
	Dimension         int           `koanf:"dimension" validate:"gte=1,lte=65536"`
	BatchSize         int           `koanf:"batch_size" validate:"gte=1,lte=4096"`
	Timeout           time.Duration `koanf:"timeout" validate:"gt=0"`
	RequestsPerSecond float64       `koanf:"requests_per_second" validate:"gte=0"`
	QueryCacheSize    int           `koanf:"query_cache_size" validate:"gte=0"`
	QueryCacheTTL     time.Duration `koanf:"query_cache_ttl" validate:"gte=0"`
	StoreDir          string        `koanf:"store_dir"`
}

// Remote reports whether the provider calls a network service.
func (e *EmbeddingConfig) Remote() bool {
	return e.Provider == "ollama" || e.Provider == "openai"
}

// CircuitBreakerConfig tunes the breaker around remote embedding calls.
//
// Environment Variables:
//   - BREAKER_MAX_FAILURES: Consecutive failures that open the breaker (default: 5)
//   - BREAKER_TIMEOUT: Open duration before probing (default: 30s)
//   - BREAKER_INTERVAL: Counter reset interval while closed (default: 1m)
type CircuitBreakerConfig struct {
	MaxFailures uint32        `koanf:"max_failures" validate:"gte=1"`
	Timeout     time.Duration `koanf:"timeout" validate:"gt=0"`
	Interval    time.Duration `koanf:"interval" validate:"gte=0"`
}

// RecommendConfig tunes ranking and the defaults offered by the query form.
//
// Environment Variables:
//   - CANDIDATE_POOL: Most-similar movies considered (default: 15)
//   - RESULT_LIMIT: Maximum results (default: 5)
//   - RANKING_CONVENTION: parity or consistent (default: parity)
//   - DEFAULT_PREFERENCE: Top or Bottom (default: Top)
//   - DEFAULT_MIN_RATING: Form default (default: 7.0)
//   - DEFAULT_MIN_YEAR: Form default (default: 2000)
type RecommendConfig struct {
	CandidatePool     int     `koanf:"candidate_pool" validate:"gte=1"`
	ResultLimit       int     `koanf:"result_limit" validate:"gte=1"`
	RankingConvention string  `koanf:"ranking_convention" validate:"oneof=parity consistent"`
	DefaultText       string  `koanf:"default_text"`
	DefaultPreference string  `koanf:"default_preference" validate:"oneof=Top Bottom"`
	DefaultMinRating  float64 `koanf:"default_min_rating" validate:"gte=0,lte=10"`
	DefaultMinYear    int     `koanf:"default_min_year" validate:"gte=0,lte=9999"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: Bind address (default: 127.0.0.1)
//   - HTTP_PORT: Listen port (default: 8080)
//   - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT: (default: 15s, 60s)
//   - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
//   - CORS_ORIGINS: Comma-separated allowed origins (default: none)
//   - RATE_LIMIT_REQUESTS: Requests per window per client, 0 disables (default: 60)
//   - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port" validate:"gte=1,lte=65535"`
	ReadTimeout       time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout      time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gte=0"`
}

// Addr returns host:port for net/http.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: Include file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}
