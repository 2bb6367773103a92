// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package models

// MessageNoRecommendations accompanies an empty recommendation list.
const MessageNoRecommendations = "no recommendations"

// SearchMatch is one fuzzy title candidate.
type SearchMatch struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// SearchResponse is the payload of GET /api/v1/search.
type SearchResponse struct {
	Query   string        `json:"query"`
	Matches []SearchMatch `json:"matches"`
}

// RecommendationItem is one recommended title. PosterURL is set only when
// enrichment was requested and a poster exists; PosterAvailable is nil when
// enrichment was not requested.
type RecommendationItem struct {
	Title           string  `json:"title"`
	Score           float64 `json:"score"`
	PosterURL       string  `json:"poster_url,omitempty"`
	PosterAvailable *bool   `json:"poster_available,omitempty"`
}

// RecommendationsResponse is the payload of GET /api/v1/recommendations.
type RecommendationsResponse struct {
	Query           string               `json:"query"`
	Matches         []string             `json:"matches"`
	MatchedTitle    string               `json:"matched_title,omitempty"`
	Recommendations []RecommendationItem `json:"recommendations"`
	Message         string               `json:"message,omitempty"`
}

// MovieDetailsResponse is the payload of GET /api/v1/movies/{title}/details.
// When Available is false every other field is empty and Reason explains why.
type MovieDetailsResponse struct {
	Available   bool     `json:"available"`
	Reason      string   `json:"reason,omitempty"`
	Title       string   `json:"title,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Budget      string   `json:"budget,omitempty"`
	Revenue     string   `json:"revenue,omitempty"`
	Genres      string   `json:"genres,omitempty"`
	Cast        []string `json:"cast,omitempty"`
	PosterURL   string   `json:"poster_url,omitempty"`
}

// HealthResponse is the payload of the health endpoints.
type HealthResponse struct {
	Status       string `json:"status"`
	Ready        bool   `json:"ready"`
	Records      int    `json:"records,omitempty"`
	Enrichment   bool   `json:"enrichment"`
	BreakerState string `json:"breaker_state,omitempty"`
}
