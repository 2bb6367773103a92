// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package validation

// Limits shared by the query endpoints.
const (
	MaxTitleLength     = 200
	MaxRecommendK      = 100
	MaxSearchLimit     = 50
	DefaultSearchLimit = 10
)

// SearchRequest is GET /api/v1/search.
type SearchRequest struct {
	Query string `query:"q" validate:"required,notblank,max=200"`
	Limit int    `query:"limit" validate:"min=1,max=50"`
}

// RecommendationsRequest is GET /api/v1/recommendations.
// K of zero means the engine default.
type RecommendationsRequest struct {
	Title  string `query:"title" validate:"required,notblank,max=200"`
	K      int    `query:"k" validate:"omitempty,min=1,max=100"`
	Enrich bool   `query:"enrich"`
}

// TitleRequest validates the {title} path parameter of the movie endpoints.
type TitleRequest struct {
	Title string `query:"title" validate:"required,notblank,max=200"`
}
