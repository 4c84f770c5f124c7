// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/reelmatch/internal/embedding"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// ErrBodyTooLarge is returned when a request body exceeds maxBodyBytes.
var ErrBodyTooLarge = errors.New("request body too large")

// classifyError maps an engine error to an HTTP status and error body.
func classifyError(err error) (int, *APIError) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		v := verr.ToAPIError()
		return http.StatusBadRequest, &APIError{Code: v.Code, Message: v.Message, Details: v.Details}

	case errors.Is(err, recommend.ErrInvalidQuery):
		return http.StatusBadRequest, &APIError{Code: ErrCodeValidation, Message: "Invalid query"}

	case errors.Is(err, recommend.ErrEmbedding):
		details := map[string]interface{}{"retryable": true}
		if errors.Is(err, embedding.ErrProviderUnavailable) {
			details["circuit_open"] = true
		}
		return http.StatusServiceUnavailable, &APIError{
			Code:    ErrCodeEmbeddingUnavailable,
			Message: "Embedding provider is unavailable, try again shortly",
			Details: details,
		}

	default:
		return http.StatusInternalServerError, &APIError{
			Code:    ErrCodeInternal,
			Message: "Failed to generate recommendations",
		}
	}
}
