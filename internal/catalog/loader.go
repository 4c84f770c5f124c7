// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"
)

// Dataset column names, as published in the IMDB top 1000 file.
const (
	ColTitle    = "Series_Title"
	ColOverview = "Overview"
	ColGenre    = "Genre"
	ColDirector = "Director"
	ColStar1    = "Star1"
	ColStar2    = "Star2"
	ColRating   = "IMDB_Rating"
	ColYear     = "Released_Year"
	ColPoster   = "Poster_Link"
)

// Supported dataset formats.
const (
	FormatAuto    = "auto"
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// RequiredColumns lists, in scan order, every column a dataset must have.
var RequiredColumns = []string{
	ColTitle, ColOverview, ColGenre, ColDirector, ColStar1, ColStar2, ColRating, ColYear, ColPoster,
}

var (
	// ErrDatasetNotFound is returned when the dataset path does not exist.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrMissingColumns is returned when a required column is absent.
	ErrMissingColumns = errors.New("dataset is missing required columns")

	// ErrEmptyDataset is returned when the dataset has no rows.
	ErrEmptyDataset = errors.New("dataset has no rows")

	// ErrUnsupportedFormat is returned for unknown formats or extensions.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// Loader reads the movie table through an in-memory DuckDB. Every column is
// read as text so numeric-looking fields are never rejected at load time.
type Loader struct {
	logger zerolog.Logger
}

// NewLoader creates a Loader.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads every row of the dataset at path, preserving file order.
func (l *Loader) Load(ctx context.Context, path, format string) ([]Movie, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("stat dataset: %w", err)
	}

	source, err := sourceExpr(path, format)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	if err := checkColumns(ctx, db, source); err != nil {
		return nil, err
	}

	movies, err := scanMovies(ctx, db, source)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, path)
	}

	l.logger.Info().
		Str("path", path).
		Int("rows", len(movies)).
		Dur("took", time.Since(start)).
		Msg("Dataset loaded")
	return movies, nil
}

// sourceExpr returns the DuckDB table function reading path.
func sourceExpr(path, format string) (string, error) {
	if format == "" || format == FormatAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv", ".tsv", ".txt":
			format = FormatCSV
		case ".parquet", ".pq":
			format = FormatParquet
		default:
			return "", fmt.Errorf("%w: cannot infer format of %s", ErrUnsupportedFormat, path)
		}
	}

	lit := quoteLiteral(path)
	switch format {
	case FormatCSV:
		return "read_csv(" + lit + ", header = true, all_varchar = true)", nil
	case FormatParquet:
		return "read_parquet(" + lit + ")", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func checkColumns(ctx context.Context, db *sql.DB, source string) error {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+source+" LIMIT 0")
	if err != nil {
		return fmt.Errorf("read dataset header: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("read dataset header: %w", err)
	}

	have := make(map[string]bool, len(cols))
	for _, c := range cols {
		have[c] = true
	}
	var missing []string
	for _, c := range RequiredColumns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return rows.Err()
}

func scanMovies(ctx context.Context, db *sql.DB, source string) ([]Movie, error) {
	selects := make([]string, len(RequiredColumns))
	for i, c := range RequiredColumns {
		selects[i] = "CAST(" + quoteIdent(c) + " AS VARCHAR)"
	}
	query := "SELECT " + strings.Join(selects, ", ") + " FROM " + source

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query dataset: %w", err)
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		var f [9]sql.NullString
		if err := rows.Scan(&f[0], &f[1], &f[2], &f[3], &f[4], &f[5], &f[6], &f[7], &f[8]); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(movies), err)
		}
		movies = append(movies, Movie{
			Index:     len(movies),
			Title:     f[0].String,
			Overview:  f[1].String,
			Genre:     f[2].String,
			Director:  f[3].String,
			Star1:     f[4].String,
			Star2:     f[5].String,
			RatingRaw: f[6].String,
			YearRaw:   f[7].String,
			PosterURL: f[8].String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dataset: %w", err)
	}
	return movies, nil
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
