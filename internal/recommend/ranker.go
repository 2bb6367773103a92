// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package recommend

import "sort"

// ScoredIndex pairs a corpus position with its similarity score.
type ScoredIndex struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// Rank orders row by descending score, breaking ties by ascending index,
// drops every position for which exclude reports true, and returns at most
// topN entries. A nil exclude keeps every position.
//
// Callers exclude the query's own position by index rather than dropping
// the first ranked entry, so an equal-scoring neighbour sorted ahead of it
// can never let the query itself through.
func Rank(row []float64, topN int, exclude func(i int) bool) []ScoredIndex {
	if topN <= 0 || len(row) == 0 {
		return []ScoredIndex{}
	}

	pairs := make([]ScoredIndex, 0, len(row))
	for i, s := range row {
		if exclude != nil && exclude(i) {
			continue
		}
		pairs = append(pairs, ScoredIndex{Index: i, Score: s})
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].Score > pairs[b].Score
	})

	if topN < len(pairs) {
		pairs = pairs[:topN]
	}
	return pairs
}
