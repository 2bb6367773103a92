// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package recommend

import (
	"reflect"
	"testing"
)

func TestRank(t *testing.T) {
	t.Parallel()

	self := func(idx int) func(int) bool {
		return func(i int) bool { return i == idx }
	}

	tests := []struct {
		name    string
		row     []float64
		topN    int
		exclude func(int) bool
		want    []int
	}{
		{
			name: "descending by score",
			row:  []float64{1, 0.2, 0.9, 0.5},
			topN: 2, exclude: self(0),
			want: []int{2, 3},
		},
		{
			name: "ties keep index order",
			row:  []float64{0.7, 0.7, 0.7, 0.7},
			topN: 3, exclude: self(2),
			want: []int{0, 1, 3},
		},
		{
			name: "self excluded even when outranked by a tie",
			row:  []float64{0.9, 0.9, 0.1},
			topN: 5, exclude: self(1),
			want: []int{0, 2},
		},
		{
			name: "nil exclude keeps all",
			row:  []float64{0.1, 0.3},
			topN: 5, exclude: nil,
			want: []int{1, 0},
		},
		{
			name: "non-positive topN",
			row:  []float64{0.1, 0.3},
			topN: 0, exclude: nil,
			want: []int{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ranked := Rank(tt.row, tt.topN, tt.exclude)
			got := make([]int, len(ranked))
			for i, r := range ranked {
				got[i] = r.Index
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Rank() = %v, want %v", got, tt.want)
			}
		})
	}
}
