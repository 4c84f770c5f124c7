// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation wraps go-playground/validator v10 with a shared
// validator instance and readable, field-level error messages.
//
// Field names in messages come from the json tag, so an API client sees the
// name it sent:
//
//	type Query struct {
//	    Text      string  `json:"text" validate:"nonblank,max=2000"`
//	    MinRating float64 `json:"min_rating" validate:"gte=0,lte=10"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    apiErr := verr.ToAPIError() // VALIDATION_ERROR, "text must not be blank"
//	}
//
// # Custom Tags
//
//   - nonblank: string with at least one non-whitespace character
//
// ToAPIError puts field, tag and value into Details for a single failure,
// and a "fields" list when several fields fail.
//
// The validator is built once and is safe for concurrent use.
package validation
