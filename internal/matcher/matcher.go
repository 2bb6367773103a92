// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

// Package matcher resolves free-text queries to known movie titles by
// approximate string similarity.
package matcher

import (
	"sort"
	"strings"
)

// Scorer rates the similarity of a query and a candidate on a 0..100 scale.
type Scorer func(query, candidate string) float64

// Match is one ranked candidate.
type Match struct {
	Title string  `json:"title"`
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// Matcher ranks a fixed candidate list. It is immutable and safe for
// concurrent use.
type Matcher struct {
	candidates []string
	scorer     Scorer
}

// New creates a Matcher over candidates using WeightedRatio.
func New(candidates []string) *Matcher {
	return NewWithScorer(candidates, WeightedRatio)
}

// NewWithScorer creates a Matcher with a custom scorer.
func NewWithScorer(candidates []string, scorer Scorer) *Matcher {
	c := make([]string, len(candidates))
	copy(c, candidates)
	return &Matcher{candidates: c, scorer: scorer}
}

// Len returns the number of candidates.
func (m *Matcher) Len() int {
	return len(m.candidates)
}

// Match returns up to limit candidates ordered by descending score. Equal
// scores keep the candidates' original order. An empty or whitespace-only
// query, an empty candidate list, or a non-positive limit yields no matches.
func (m *Matcher) Match(query string, limit int) []Match {
	if strings.TrimSpace(query) == "" || len(m.candidates) == 0 || limit <= 0 {
		return []Match{}
	}

	scored := make([]Match, len(m.candidates))
	for i, c := range m.candidates {
		scored[i] = Match{Title: c, Index: i, Score: m.scorer(query, c)}
	}
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	if limit > len(scored) {
		limit = len(scored)
	}
	return scored[:limit]
}

// Titles returns the titles of matches in order.
func Titles(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Title
	}
	return out
}

// MatchTitles ranks candidates against query and returns up to limit titles.
func MatchTitles(query string, candidates []string, limit int) []string {
	return Titles(New(candidates).Match(query, limit))
}
