// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/reelmatch/reelmatch/internal/models"
)

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of engine state.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: map[string]any{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady handles readiness probe requests.
// Returns 200 once the engine is initialized and 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := models.HealthResponse{
		Status:     "ready",
		Ready:      h.engine.Ready(),
		Enrichment: h.enricher.Enabled(),
	}
	if br, ok := h.enricher.(breakerReporter); ok {
		health.BreakerState = br.BreakerState()
	}

	status := http.StatusOK
	if health.Ready {
		health.Records = h.engine.Status().Records
	} else {
		health.Status = "initializing"
		status = http.StatusServiceUnavailable
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     health,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// EngineStatus handles GET /api/v1/engine/status.
func (h *Handler) EngineStatus(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.engine.Status(), time.Now())
}
