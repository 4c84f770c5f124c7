// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"net/http"
	"time"
)

// healthPingTimeout bounds the provider check so health stays cheap.
const healthPingTimeout = 2 * time.Second

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status       string  `json:"status" example:"healthy"`
	Provider     string  `json:"provider" example:"ollama"`
	ProviderUp   bool    `json:"provider_reachable"`
	BreakerState string  `json:"breaker_state,omitempty" example:"closed"`
	Movies       int     `json:"movies" example:"1000"`
	Uptime       float64 `json:"uptime_seconds"`
}

// Health handles GET /api/v1/health.
//
// The process is live as long as it answers; an unreachable provider only
// degrades the status since cached query vectors may still be served.
//
// @Summary Liveness and provider health
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	health := HealthStatus{
		Status:     "healthy",
		Provider:   "unknown",
		ProviderUp: true,
		Movies:     h.catalog.Stats().Movies,
		Uptime:     time.Since(h.startTime).Seconds(),
	}

	if h.embedding != nil {
		health.Provider = h.embedding.Provider()
		health.BreakerState = h.embedding.BreakerState()

		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := h.embedding.Ping(ctx); err != nil {
			h.logger.Warn().Err(err).Str("provider", health.Provider).Msg("Embedding provider health check failed")
			health.ProviderUp = false
			health.Status = "degraded"
		}
	}

	respondSuccess(w, r, health, time.Since(start))
}
