// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package textsim

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Matrix is a dense, symmetric N×N similarity matrix stored row-major.
// It is read-only after BuildMatrix returns and safe for concurrent reads.
type Matrix struct {
	n    int
	data []float64
}

// Size returns N.
func (m *Matrix) Size() int {
	return m.n
}

// At returns entry (i, j).
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns row i as a view into the matrix. Callers must not modify it.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// BuildMatrix computes kernel(vectors[i], vectors[j]) for every pair.
//
// Each unordered pair is computed once, by the worker owning the lower row,
// and mirrored, so the result is exactly symmetric. Off-diagonal entries are
// capped at the smaller of the two diagonal entries so floating-point error
// can never push a pair above a row's self-similarity. workers <= 0 uses
// GOMAXPROCS.
func BuildMatrix(ctx context.Context, vectors []SparseVector, kernel Kernel, workers int) (*Matrix, error) {
	n := len(vectors)
	m := &Matrix{n: n, data: make([]float64, n*n)}
	if n == 0 {
		return m, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	diag := make([]float64, n)
	for i := range vectors {
		diag[i] = kernel.Similarity(vectors[i], vectors[i])
		m.data[i*n+i] = diag[i]
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j := i + 1; j < n; j++ {
				s := math.Min(kernel.Similarity(vectors[i], vectors[j]), math.Min(diag[i], diag[j]))
				m.data[i*n+j] = s
				m.data[j*n+i] = s
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}
