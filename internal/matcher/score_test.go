// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package matcher

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"  The Dark-Knight!! ": "the dark knight",
		"WALL·E":               "wall e",
		"":                     "",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestScorers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"ratio identical", Ratio("heat", "heat"), 100},
		{"ratio one edit", Ratio("dg1", "dog1"), 75},
		{"ratio disjoint empty", Ratio("", "x"), 0},
		{"partial substring", PartialRatio("dark", "the dark knight"), 100},
		{"token sort", TokenSortRatio("knight dark", "dark knight", false), 100},
		{"token set subset", TokenSetRatio("dark knight", "the dark knight rises", false), 100},
		{"weighted empty", WeightedRatio("", "anything"), 0},
		{"weighted case", WeightedRatio("AVATAR", "avatar"), 100},
	}

	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
