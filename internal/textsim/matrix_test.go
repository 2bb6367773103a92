// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package textsim

import (
	"context"
	"errors"
	"math"
	"testing"
)

var testOverviews = []string{
	"A retired detective returns to solve one last murder case in the city.",
	"A young detective hunts a serial killer through the city at night.",
	"Two astronauts are stranded on a distant planet after a storm.",
	"An astronaut crew travels to a distant planet to save humanity.",
	"A detective and an astronaut meet at a murder case on a planet.",
	"",
	"A young wizard attends a school of magic and fights a dark lord.",
}

func buildTestMatrix(t *testing.T, minDF int) (*TermSpace, *Matrix) {
	t.Helper()
	space := NewVectorizer(VectorizerConfig{MinDocFreq: minDF}).FitTransform(testOverviews)
	m, err := BuildMatrix(context.Background(), space.Vectors, NewSigmoidKernel(space.Dimensions()), 3)
	if err != nil {
		t.Fatalf("BuildMatrix() error = %v", err)
	}
	return space, m
}

func TestBuildMatrix_Properties(t *testing.T) {
	t.Parallel()

	for _, minDF := range []int{1, 2, 3} {
		_, m := buildTestMatrix(t, minDF)
		if m.Size() != len(testOverviews) {
			t.Fatalf("Size() = %d", m.Size())
		}
		for i := 0; i < m.Size(); i++ {
			row := m.Row(i)
			for j := 0; j < m.Size(); j++ {
				if m.At(i, j) != m.At(j, i) {
					t.Errorf("min_df=%d: matrix not symmetric at (%d,%d)", minDF, i, j)
				}
				if row[j] > row[i] {
					t.Errorf("min_df=%d: row %d has %v above diagonal %v at %d", minDF, i, row[j], row[i], j)
				}
				if row[j] < -1 || row[j] > 1 {
					t.Errorf("min_df=%d: score %v out of tanh range", minDF, row[j])
				}
			}
		}
	}
}

func TestBuildMatrix_RelatedDocumentsScoreHigher(t *testing.T) {
	t.Parallel()

	_, m := buildTestMatrix(t, 2)
	// The two detective stories share more vocabulary than detective and wizard.
	if m.At(0, 1) <= m.At(0, 6) {
		t.Errorf("detective pair %v should exceed detective/wizard %v", m.At(0, 1), m.At(0, 6))
	}
	if m.At(2, 3) <= m.At(2, 0) {
		t.Errorf("planet pair %v should exceed planet/detective %v", m.At(2, 3), m.At(2, 0))
	}
}

func TestBuildMatrix_EmptyVocabulary(t *testing.T) {
	t.Parallel()

	space := NewVectorizer(VectorizerConfig{}).FitTransform([]string{"a dog runs", "a cat sleeps"})
	m, err := BuildMatrix(context.Background(), space.Vectors, NewSigmoidKernel(space.Dimensions()), 0)
	if err != nil {
		t.Fatalf("BuildMatrix() error = %v", err)
	}
	want := math.Tanh(1)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(m.At(i, j)-want) > eps {
				t.Errorf("At(%d,%d) = %v, want tanh(1)", i, j, m.At(i, j))
			}
		}
	}
}

func TestBuildMatrix_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	space := NewVectorizer(VectorizerConfig{MinDocFreq: 1}).FitTransform(testOverviews)
	_, err := BuildMatrix(ctx, space.Vectors, CosineKernel{}, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNewKernel(t *testing.T) {
	t.Parallel()

	k, err := NewKernel("", 4)
	if err != nil || k.Name() != KernelSigmoid {
		t.Fatalf("NewKernel(\"\") = %v, %v", k, err)
	}
	if sk := k.(SigmoidKernel); sk.Gamma != 0.25 || sk.Coef0 != 1 {
		t.Errorf("sigmoid params = %+v", sk)
	}
	if k, _ := NewKernel(KernelCosine, 4); k.Name() != KernelCosine {
		t.Errorf("NewKernel(cosine).Name() = %s", k.Name())
	}
	if _, err := NewKernel("rbf", 4); err == nil {
		t.Error("expected error for unknown kernel")
	}
	if NewSigmoidKernel(0).Gamma != 1 {
		t.Error("empty space should use gamma 1")
	}
}
