// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package api

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/reelmatch/reelmatch/internal/logging"
	"github.com/reelmatch/reelmatch/internal/models"
	"github.com/reelmatch/reelmatch/internal/validation"
)

// titleParam extracts and validates the {title} path parameter. ok is false
// when a response has been written.
func titleParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	title := chi.URLParam(r, "title")
	// chi routes on RawPath when the path carries escaped slashes.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(title); err == nil {
			title = unescaped
		}
	}
	req := validation.TitleRequest{Title: title}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return "", false
	}
	return title, true
}

// Movie handles GET /api/v1/movies/{title}
// Returns the corpus record for an exact title.
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	title, ok := titleParam(w, r)
	if !ok {
		return
	}
	state, ok := h.engineState(w)
	if !ok {
		return
	}

	movie, found := state.Corpus().Lookup(title)
	if !found {
		respondErrorDetails(w, http.StatusNotFound, CodeNotFound, "Title not found",
			map[string]any{"title": title})
		return
	}
	respondSuccess(w, r, movie, start)
}

// MovieDetails handles GET /api/v1/movies/{title}/details
// Details come from the metadata collaborator; when it has nothing the
// response is still 200 with available=false.
func (h *Handler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	title, ok := titleParam(w, r)
	if !ok {
		return
	}

	lookup := h.enricher.FetchDetails(r.Context(), title)
	d, present := lookup.Get()
	if !present {
		respondSuccess(w, r, models.MovieDetailsResponse{Available: false, Reason: lookup.Reason}, start)
		return
	}

	respondSuccess(w, r, models.MovieDetailsResponse{
		Available:   true,
		Title:       d.Title,
		Overview:    d.Overview,
		ReleaseDate: d.ReleaseDate,
		Budget:      d.Budget,
		Revenue:     d.Revenue,
		Genres:      d.Genres,
		Cast:        d.CastList,
		PosterURL:   d.PosterURL,
	}, start)
}

// MoviePoster handles GET /api/v1/movies/{title}/poster
// Streams the poster image, or 404 POSTER_NOT_FOUND.
func (h *Handler) MoviePoster(w http.ResponseWriter, r *http.Request) {
	title, ok := titleParam(w, r)
	if !ok {
		return
	}

	lookup := h.enricher.FetchPoster(r.Context(), title)
	poster, present := lookup.Get()
	if !present {
		respondErrorDetails(w, http.StatusNotFound, CodePosterNotFound, "Poster not available",
			map[string]any{"title": title, "reason": lookup.Reason})
		return
	}

	w.Header().Set("Content-Type", poster.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(poster.Data)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(poster.Data); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to write poster")
	}
}
