// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/reelmatch/reelmatch/internal/recommend"
	"github.com/reelmatch/reelmatch/internal/tmdb"
)

// defaultEnrichConcurrency bounds parallel poster lookups per request.
const defaultEnrichConcurrency = 4

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: liveness, readiness and engine status
//   - handlers_recommend.go: search and recommendations
//   - handlers_movies.go: corpus record, details and poster
type Handler struct {
	engine            *recommend.Engine
	enricher          tmdb.Enricher
	startTime         time.Time
	enrichConcurrency int
}

// NewHandler creates a handler. A nil enricher is replaced by tmdb.Disabled.
//
// Example:
//
//	handler := api.NewHandler(engine, tmdbClient)
//	router := api.NewRouter(handler, api.DefaultChiMiddlewareConfig())
//	http.ListenAndServe(":8080", router.Setup())
func NewHandler(engine *recommend.Engine, enricher tmdb.Enricher) *Handler {
	if enricher == nil {
		enricher = tmdb.Disabled{}
	}
	return &Handler{
		engine:            engine,
		enricher:          enricher,
		startTime:         time.Now(),
		enrichConcurrency: defaultEnrichConcurrency,
	}
}

// breakerReporter is implemented by enrichers guarded by a circuit breaker.
type breakerReporter interface {
	BreakerState() string
}

// engineState returns the built state, answering 503 when the engine is not
// initialized yet. ok is false when a response has been written.
func (h *Handler) engineState(w http.ResponseWriter) (*recommend.EngineState, bool) {
	state, err := h.engine.State()
	if err == nil {
		return state, true
	}
	if errors.Is(err, recommend.ErrNotInitialized) {
		respondError(w, http.StatusServiceUnavailable, CodeServiceUnavailable, "Recommendation engine is not initialized", nil)
		return nil, false
	}
	respondError(w, http.StatusInternalServerError, CodeInternal, "Recommendation engine unavailable", err)
	return nil, false
}
