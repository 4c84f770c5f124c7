// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// maxBodyBytes caps JSON and form bodies.
const maxBodyBytes = 64 << 10

// RecommendRequest is the JSON body of POST /api/v1/recommendations.
// Omitted filters and preference fall back to the server defaults.
type RecommendRequest struct {
	Text       string   `json:"text" example:"Sci-fi adventure with space battles"`
	MinRating  *float64 `json:"min_rating,omitempty" example:"7"`
	MinYear    *int     `json:"min_year,omitempty" example:"2000"`
	Preference *string  `json:"preference,omitempty" example:"Top" enums:"Top,Bottom"`
}

// toQuery fills omitted fields from defaults. An unrecognised preference is
// passed through unchanged so validation reports it.
func (req *RecommendRequest) toQuery(defaults recommend.Query) recommend.Query {
	q := defaults
	q.Text = req.Text
	if req.MinRating != nil {
		q.MinRating = *req.MinRating
	}
	if req.MinYear != nil {
		q.MinYear = *req.MinYear
	}
	if req.Preference != nil {
		q.Preference = parsePreferenceLenient(*req.Preference)
	}
	return q
}

func parsePreferenceLenient(s string) recommend.Preference {
	if p, err := recommend.ParsePreference(s); err == nil {
		return p
	}
	return recommend.Preference(s)
}

// decodeJSON reads one JSON object from the body into dst, rejecting unknown
// fields and trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("request body is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// formError describes a form field that could not be parsed as a number.
type formError struct {
	Field string
	Value string
}

func (e *formError) Error() string {
	return fmt.Sprintf("%s must be a number, got %q", e.Field, e.Value)
}

// parseQueryForm reads the HTML form. Empty numeric fields keep the defaults.
func parseQueryForm(w http.ResponseWriter, r *http.Request, defaults recommend.Query) (recommend.Query, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return defaults, fmt.Errorf("parse form: %w", err)
	}

	q := defaults
	q.Text = r.PostFormValue("text")

	if v := strings.TrimSpace(r.PostFormValue("min_rating")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, &formError{Field: "min_rating", Value: v}
		}
		q.MinRating = f
	}
	if v := strings.TrimSpace(r.PostFormValue("min_year")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, &formError{Field: "min_year", Value: v}
		}
		q.MinYear = n
	}
	if v := r.PostFormValue("preference"); v != "" {
		q.Preference = parsePreferenceLenient(v)
	}
	return q, nil
}
