// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// CatalogResponse describes the loaded catalog and the engine serving it.
type CatalogResponse struct {
	Catalog    catalog.Stats         `json:"catalog"`
	Engine     recommend.EngineStats `json:"engine"`
	Convention recommend.Convention  `json:"ranking_convention" example:"parity"`
	Pool       int                   `json:"candidate_pool" example:"15"`
	Limit      int                   `json:"result_limit" example:"5"`
}

// Catalog handles GET /api/v1/catalog.
//
// @Summary Catalog statistics
// @Description Size of the catalog, embedding model and dimension, rows whose rating or year is not numeric, and engine counters.
// @Tags Catalog
// @Produce json
// @Success 200 {object} APIResponse{data=CatalogResponse}
// @Router /catalog [get]
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	cfg := h.engine.Config()

	respondSuccess(w, r, CatalogResponse{
		Catalog:    h.catalog.Stats(),
		Engine:     h.engine.Stats(),
		Convention: cfg.Convention,
		Pool:       cfg.CandidatePool,
		Limit:      cfg.ResultLimit,
	}, time.Since(start))
}
