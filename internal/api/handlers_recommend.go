// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"errors"
	"net/http"
	"time"
)

// Recommendations handles POST /api/v1/recommendations.
//
// @Summary Recommend movies for a free-text description
// @Description Embeds the description, takes the 15 most similar catalog movies, applies the rating and year filters and returns at most 5 ranked by the Top/Bottom preference.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Query; omitted filters use server defaults"
// @Success 200 {object} APIResponse{data=recommend.Response} "Ranked recommendations (possibly empty)"
// @Failure 400 {object} APIResponse{error=APIError} "INVALID_REQUEST or VALIDATION_ERROR"
// @Failure 503 {object} APIResponse{error=APIError} "EMBEDDING_UNAVAILABLE"
// @Failure 500 {object} APIResponse{error=APIError} "INTERNAL_ERROR"
// @Router /recommendations [post]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrBodyTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		respondError(w, r, status, &APIError{Code: ErrCodeInvalidRequest, Message: err.Error()}, err)
		return
	}

	resp, err := h.recommend(r.Context(), req.toQuery(h.engine.Config().DefaultQuery()))
	if err != nil {
		status, apiErr := classifyError(err)
		respondError(w, r, status, apiErr, err)
		return
	}

	respondSuccess(w, r, resp, time.Since(start))
}
