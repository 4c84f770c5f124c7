// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

const sampleDataset = "testdata/movies_sample.csv"

func TestLoader_LoadSample(t *testing.T) {
	t.Parallel()

	movies, err := NewLoader(zerolog.Nop()).Load(context.Background(), sampleDataset, FormatAuto)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(movies) != 5 {
		t.Fatalf("rows = %d, want 5", len(movies))
	}

	first := movies[0]
	if first.Index != 0 || first.Title != "Interstellar" {
		t.Errorf("first row = %+v", first)
	}
	if first.Genre != "Adventure, Drama, Sci-Fi" {
		t.Errorf("quoted field with commas = %q", first.Genre)
	}
	if first.RatingRaw != "8.6" || first.YearRaw != "2014" {
		t.Errorf("rating/year = %q/%q", first.RatingRaw, first.YearRaw)
	}
	if first.PosterURL != "https://m.media-amazon.com/images/M/interstellar.jpg" {
		t.Errorf("poster = %q", first.PosterURL)
	}

	for i, m := range movies {
		if m.Index != i {
			t.Errorf("movies[%d].Index = %d, file order not preserved", i, m.Index)
		}
	}

	// Malformed year is kept raw, not rejected.
	if movies[1].Title != "Apollo 13" || movies[1].YearRaw != "PG" {
		t.Errorf("row 1 = %+v", movies[1])
	}

	if movies[3].Title != "Amélie" {
		t.Errorf("UTF-8 title = %q", movies[3].Title)
	}

	last := movies[4]
	if last.Overview != "" || last.RatingRaw != "" || last.Star1 != "" {
		t.Errorf("empty cells should load as empty strings: %+v", last)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader(zerolog.Nop()).Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), FormatAuto)
	if !errors.Is(err, ErrDatasetNotFound) {
		t.Errorf("expected ErrDatasetNotFound, got %v", err)
	}
}

func TestLoader_MissingColumns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "partial.csv")
	data := "Series_Title,Overview,Genre,Director,Star1,IMDB_Rating,Released_Year\n" +
		"Heat,A heist,Crime,Michael Mann,Al Pacino,8.3,1995\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader(zerolog.Nop()).Load(context.Background(), path, FormatCSV)
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
	for _, col := range []string{ColStar2, ColPoster} {
		if !strings.Contains(err.Error(), col) {
			t.Errorf("error %q should name missing column %s", err, col)
		}
	}
}

func TestSourceExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, format string
		want         string
		wantErr      error
	}{
		{"/data/movies.csv", FormatAuto, "read_csv('/data/movies.csv', header = true, all_varchar = true)", nil},
		{"/data/movies.PARQUET", "", "read_parquet('/data/movies.PARQUET')", nil},
		{"/data/o'brien.csv", FormatCSV, "read_csv('/data/o''brien.csv', header = true, all_varchar = true)", nil},
		{"/data/movies.xlsx", FormatAuto, "", ErrUnsupportedFormat},
		{"/data/movies.csv", "json", "", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.format, func(t *testing.T) {
			t.Parallel()
			got, err := sourceExpr(tt.path, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("sourceExpr = %q, want %q", got, tt.want)
			}
		})
	}
}
