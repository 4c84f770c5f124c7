// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package validation

import (
	"strings"
	"testing"
)

type sampleQuery struct {
	Text       string  `json:"text" validate:"nonblank,max=20"`
	MinRating  float64 `json:"min_rating" validate:"gte=0,lte=10"`
	MinYear    int     `json:"min_year" validate:"gte=0"`
	Preference string  `json:"preference" validate:"oneof=Top Bottom"`
	Internal   string  `json:"-" validate:"omitempty,min=2"`
}

func validSample() sampleQuery {
	return sampleQuery{Text: "space battles", MinRating: 7, MinYear: 2000, Preference: "Top"}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	q := validSample()
	if err := ValidateStruct(&q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStruct_FieldErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*sampleQuery)
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"blank text", func(q *sampleQuery) { q.Text = "   " }, "text", "nonblank", "text must not be blank"},
		{"long text", func(q *sampleQuery) { q.Text = strings.Repeat("x", 21) }, "text", "max", "text must be at most 20 characters"},
		{"rating above range", func(q *sampleQuery) { q.MinRating = 10.5 }, "min_rating", "lte", "min_rating must be less than or equal to 10"},
		{"negative rating", func(q *sampleQuery) { q.MinRating = -1 }, "min_rating", "gte", "min_rating must be greater than or equal to 0"},
		{"bad preference", func(q *sampleQuery) { q.Preference = "Middle" }, "preference", "oneof", "preference must be one of: Top Bottom"},
		{"json dash uses struct name", func(q *sampleQuery) { q.Internal = "x" }, "Internal", "min", "Internal must be at least 2 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q := validSample()
			tt.mutate(&q)

			verr := ValidateStruct(&q)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		q := validSample()
		q.Preference = ""
		apiErr := ValidateStruct(&q).ToAPIError()
		if apiErr.Code != CodeValidation {
			t.Errorf("Code = %q", apiErr.Code)
		}
		if apiErr.Details["field"] != "preference" {
			t.Errorf("Details[field] = %v", apiErr.Details["field"])
		}
	})

	t.Run("multiple", func(t *testing.T) {
		t.Parallel()
		q := sampleQuery{Text: "", MinRating: 11, Preference: "Top"}
		apiErr := ValidateStruct(&q).ToAPIError()
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Fatalf("expected 2 field entries, got %v", apiErr.Details["fields"])
		}
		if !strings.Contains(apiErr.Message, "; ") {
			t.Errorf("combined message should join errors: %q", apiErr.Message)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}
