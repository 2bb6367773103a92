// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package textsim

import (
	"fmt"
	"math"
)

// Kernel scores the similarity of two document vectors. Implementations
// must be symmetric and monotonic in the dot product.
type Kernel interface {
	Name() string
	Similarity(x, y SparseVector) float64
}

// Kernel names accepted by NewKernel.
const (
	KernelSigmoid = "sigmoid"
	KernelCosine  = "cosine"
)

// SigmoidKernel computes tanh(Gamma*<x,y> + Coef0).
type SigmoidKernel struct {
	Gamma float64
	Coef0 float64
}

// NewSigmoidKernel returns the sigmoid kernel for a space of the given
// dimension: gamma = 1/dimensions (1 when the space is empty), coef0 = 1.
func NewSigmoidKernel(dimensions int) SigmoidKernel {
	gamma := 1.0
	if dimensions > 0 {
		gamma = 1 / float64(dimensions)
	}
	return SigmoidKernel{Gamma: gamma, Coef0: 1}
}

// Name implements Kernel.
func (k SigmoidKernel) Name() string { return KernelSigmoid }

// Similarity implements Kernel.
func (k SigmoidKernel) Similarity(x, y SparseVector) float64 {
	return math.Tanh(k.Gamma*x.Dot(y) + k.Coef0)
}

// CosineKernel is the plain dot product of unit vectors.
type CosineKernel struct{}

// Name implements Kernel.
func (CosineKernel) Name() string { return KernelCosine }

// Similarity implements Kernel.
func (CosineKernel) Similarity(x, y SparseVector) float64 {
	return x.Dot(y)
}

// NewKernel returns the named kernel for a space of the given dimension.
func NewKernel(name string, dimensions int) (Kernel, error) {
	switch name {
	case "", KernelSigmoid:
		return NewSigmoidKernel(dimensions), nil
	case KernelCosine:
		return CosineKernel{}, nil
	default:
		return nil, fmt.Errorf("unknown similarity kernel %q", name)
	}
}
