// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package api

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reelmatch/reelmatch/internal/logging"
	"github.com/reelmatch/reelmatch/internal/models"
	"github.com/reelmatch/reelmatch/internal/recommend"
	"github.com/reelmatch/reelmatch/internal/validation"
)

// Search handles GET /api/v1/search?q=&limit=
// Returns the known titles closest to q, best first.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, apiErr := getIntParam(r, "limit", validation.DefaultSearchLimit)
	if apiErr != nil {
		respondValidation(w, apiErr)
		return
	}
	req := validation.SearchRequest{
		Query: r.URL.Query().Get("q"),
		Limit: limit,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	state, ok := h.engineState(w)
	if !ok {
		return
	}

	found := state.Match(req.Query, req.Limit)
	matches := make([]models.SearchMatch, len(found))
	for i, m := range found {
		matches[i] = models.SearchMatch{Title: m.Title, Score: m.Score}
	}

	respondSuccess(w, r, models.SearchResponse{Query: req.Query, Matches: matches}, start)
}

// Recommendations handles GET /api/v1/recommendations?title=&k=&enrich=
// The title is resolved with the fuzzy matcher first; recommendations are
// computed for the best candidate. With enrich=true every item carries a
// poster URL when the collaborator has one.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	k, apiErr := getIntParam(r, "k", 0)
	if apiErr != nil {
		respondValidation(w, apiErr)
		return
	}
	req := validation.RecommendationsRequest{
		Title:  r.URL.Query().Get("title"),
		K:      k,
		Enrich: getBoolParam(r, "enrich"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	state, ok := h.engineState(w)
	if !ok {
		return
	}

	result := state.Query(req.Title, req.K)
	resp := models.RecommendationsResponse{
		Query:           result.Query,
		Matches:         result.Matches,
		MatchedTitle:    result.MatchedTitle,
		Recommendations: toItems(result.Recommendations),
	}
	if !result.Found() {
		resp.Message = models.MessageNoRecommendations
	}
	if req.Enrich && len(resp.Recommendations) > 0 {
		h.enrichPosters(r.Context(), resp.Recommendations)
	}

	logging.Ctx(r.Context()).Debug().
		Str("query", sanitizeLogValue(req.Title)).
		Str("matched_title", sanitizeLogValue(result.MatchedTitle)).
		Int("results", len(resp.Recommendations)).
		Bool("enrich", req.Enrich).
		Msg("Recommendations served")

	respondSuccess(w, r, resp, start)
}

func toItems(recs []recommend.Recommendation) []models.RecommendationItem {
	items := make([]models.RecommendationItem, len(recs))
	for i, rec := range recs {
		items[i] = models.RecommendationItem{Title: rec.Title, Score: rec.Score}
	}
	return items
}

// enrichPosters resolves poster URLs concurrently. Lookups never fail; an
// absent poster leaves PosterURL empty and PosterAvailable false.
func (h *Handler) enrichPosters(ctx context.Context, items []models.RecommendationItem) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.enrichConcurrency)
	for i := range items {
		i := i
		g.Go(func() error {
			lookup := h.enricher.PosterURL(ctx, items[i].Title)
			available := lookup.Present
			items[i].PosterAvailable = &available
			items[i].PosterURL = lookup.OrElse("")
			return nil
		})
	}
	_ = g.Wait()
}
