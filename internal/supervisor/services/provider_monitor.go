// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

// ProviderChecker is satisfied by *embedding.Pipeline.
type ProviderChecker interface {
	Ping(ctx context.Context) error
	Provider() string
}

// ProviderMonitorConfig holds configuration for the provider monitor.
type ProviderMonitorConfig struct {
	// Interval between health checks. Default: 30s
	Interval time.Duration

	// Timeout for one check. Default: 5s
	Timeout time.Duration
}

// ProviderMonitorService periodically pings the embedding provider,
// publishes reelmatch_embedding_provider_up and logs up/down transitions.
type ProviderMonitorService struct {
	checker ProviderChecker
	config  ProviderMonitorConfig
	logger  zerolog.Logger
	name    string

	checks atomic.Int64
	up     atomic.Bool
	known  atomic.Bool
}

// NewProviderMonitorService creates a monitor for checker.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewProviderMonitorService(checker ProviderChecker, cfg ProviderMonitorConfig, logger zerolog.Logger) *ProviderMonitorService {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &ProviderMonitorService{
		checker: checker,
		config:  cfg,
		logger:  logger.With().Str("service", "provider-monitor").Str("provider", checker.Provider()).Logger(),
		name:    "provider-monitor",
	}
}

// Serve implements suture.Service. It checks once immediately, then on every tick.
func (s *ProviderMonitorService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.config.Interval).Msg("provider monitor starting")

	s.check(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *ProviderMonitorService) check(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	err := s.checker.Ping(checkCtx)
	if ctx.Err() != nil {
		return // shutting down, the result says nothing about the provider
	}
	up := err == nil
	s.checks.Add(1)
	metrics.SetProviderUp(s.checker.Provider(), up)

	wasKnown := s.known.Swap(true)
	wasUp := s.up.Swap(up)
	switch {
	case !up && (!wasKnown || wasUp):
		s.logger.Warn().Err(err).Msg("Embedding provider unreachable")
	case up && wasKnown && !wasUp:
		s.logger.Info().Msg("Embedding provider reachable again")
	}
}

// Healthy reports the result of the most recent check; false before the first.
func (s *ProviderMonitorService) Healthy() bool {
	return s.known.Load() && s.up.Load()
}

// Checks returns how many checks have completed.
func (s *ProviderMonitorService) Checks() int64 {
	return s.checks.Load()
}

// String returns the service name for logging.
func (s *ProviderMonitorService) String() string {
	return s.name
}
