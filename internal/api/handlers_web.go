// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

//go:embed templates/index.html
var templateFS embed.FS

// Year slider bounds on the form.
const (
	formYearMin = 1900
	formYearMax = 2025
)

// noResultsMessage is shown when the filters leave nothing to recommend.
const noResultsMessage = "No recommendations found. Try different inputs!"

// pageData is the view model for templates/index.html.
type pageData struct {
	Query       recommend.Query
	Preferences []recommend.Preference
	YearMin     int
	YearMax     int
	Submitted   bool
	Results     []recommend.Recommendation
	NoResults   string
	Error       string
}

type pageRenderer struct {
	index *template.Template
}

func newPageRenderer() (*pageRenderer, error) {
	index, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &pageRenderer{index: index}, nil
}

// render executes into a buffer first so a template error never leaves a half-written page.
func (p *pageRenderer) render(w http.ResponseWriter, status int, data *pageData) error {
	data.Preferences = []recommend.Preference{recommend.PreferenceTop, recommend.PreferenceBottom}
	data.YearMin, data.YearMax = formYearMin, formYearMax
	data.NoResults = noResultsMessage

	var buf bytes.Buffer
	if err := p.index.Execute(&buf, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

// Index handles GET / and renders the form with the configured defaults.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, &pageData{Query: h.engine.Config().DefaultQuery()})
}

// IndexSubmit handles POST / and renders the form with result cards.
func (h *Handler) IndexSubmit(w http.ResponseWriter, r *http.Request) {
	q, err := parseQueryForm(w, r, h.engine.Config().DefaultQuery())
	if err != nil {
		var fe *formError
		msg := "Could not read the form. Please try again."
		if errors.As(err, &fe) {
			msg = fe.Error()
		}
		h.logger.Debug().Err(err).Msg("Rejected form submission")
		h.renderPage(w, r, http.StatusBadRequest, &pageData{Query: q, Error: msg})
		return
	}

	resp, err := h.recommend(r.Context(), q)
	if err != nil {
		status, apiErr := classifyError(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error().Err(err).Msg("Recommendation failed")
		}
		h.renderPage(w, r, status, &pageData{Query: q, Error: apiErr.Message})
		return
	}

	h.renderPage(w, r, http.StatusOK, &pageData{
		Query:     q,
		Submitted: true,
		Results:   resp.Items,
	})
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, data *pageData) {
	if err := h.pages.render(w, status, data); err != nil {
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("Failed to render page")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
