// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package textsim

import (
	"math"
	"sort"
)

// VectorizerConfig configures TF-IDF vectorization.
type VectorizerConfig struct {
	// MinDocFreq is the minimum number of documents a term must occur in.
	// Default: 3
	MinDocFreq int
	// MinNGram and MaxNGram bound the word n-gram lengths. Default: 1..3
	MinNGram int
	MaxNGram int
	// StopWords are removed before n-grams are formed. Default: English.
	StopWords StopWords
	// KeepStopWords disables stop-word removal entirely.
	KeepStopWords bool
}

// DefaultVectorizerConfig returns the default vectorizer configuration.
func DefaultVectorizerConfig() VectorizerConfig {
	return VectorizerConfig{
		MinDocFreq: 3,
		MinNGram:   1,
		MaxNGram:   3,
		StopWords:  EnglishStopWords(),
	}
}

// TermSpace is the fitted TF-IDF representation of a document collection.
// It is immutable after FitTransform returns.
type TermSpace struct {
	// Vocabulary lists the retained terms in lexicographic order; a term's
	// position is its vector index.
	Vocabulary []string
	// IDF holds the smoothed inverse document frequency of each term.
	IDF []float64
	// Vectors holds one L2-normalized vector per input document, in order.
	Vectors []SparseVector
}

// Dimensions returns the vocabulary size.
func (s *TermSpace) Dimensions() int {
	return len(s.Vocabulary)
}

// TermIndex returns the vector index of term.
func (s *TermSpace) TermIndex(term string) (int, bool) {
	i := sort.SearchStrings(s.Vocabulary, term)
	if i < len(s.Vocabulary) && s.Vocabulary[i] == term {
		return i, true
	}
	return 0, false
}

// Vectorizer fits a TermSpace over a set of documents.
type Vectorizer struct {
	minDocFreq int
	analyzer   *Analyzer
}

// NewVectorizer creates a vectorizer, filling zero config fields with defaults.
func NewVectorizer(cfg VectorizerConfig) *Vectorizer {
	def := DefaultVectorizerConfig()
	if cfg.MinDocFreq <= 0 {
		cfg.MinDocFreq = def.MinDocFreq
	}
	if cfg.MinNGram <= 0 {
		cfg.MinNGram = def.MinNGram
	}
	if cfg.MaxNGram <= 0 {
		cfg.MaxNGram = def.MaxNGram
	}
	stop := cfg.StopWords
	if stop == nil {
		stop = def.StopWords
	}
	if cfg.KeepStopWords {
		stop = nil
	}
	return &Vectorizer{
		minDocFreq: cfg.MinDocFreq,
		analyzer:   NewAnalyzer(cfg.MinNGram, cfg.MaxNGram, stop),
	}
}

// FitTransform learns the vocabulary and IDF weights of docs and returns
// their weighted vectors.
//
// A term is kept when it occurs in at least MinDocFreq documents. Weights
// are raw term counts times idf(t) = ln((1+N)/(1+df(t))) + 1, and each
// document vector is scaled to unit length. An empty vocabulary yields
// zero vectors and is not an error.
func (v *Vectorizer) FitTransform(docs []string) *TermSpace {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		c := make(map[string]int)
		for _, term := range v.analyzer.Terms(doc) {
			c[term]++
		}
		for term := range c {
			df[term]++
		}
		counts[i] = c
	}

	vocab := make([]string, 0, len(df))
	for term, n := range df {
		if n >= v.minDocFreq {
			vocab = append(vocab, term)
		}
	}
	sort.Strings(vocab)

	index := make(map[string]int32, len(vocab))
	idf := make([]float64, len(vocab))
	n := float64(len(docs))
	for i, term := range vocab {
		index[term] = int32(i) //nolint:gosec // vocabulary size is far below MaxInt32
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]SparseVector, len(docs))
	for i, c := range counts {
		vec := SparseVector{
			Indices: make([]int32, 0, len(c)),
			Values:  make([]float64, 0, len(c)),
		}
		for term := range c {
			if k, ok := index[term]; ok {
				vec.Indices = append(vec.Indices, k)
			}
		}
		sort.Slice(vec.Indices, func(a, b int) bool { return vec.Indices[a] < vec.Indices[b] })
		for _, k := range vec.Indices {
			vec.Values = append(vec.Values, float64(c[vocab[k]])*idf[k])
		}
		vec.normalize()
		vectors[i] = vec
	}

	return &TermSpace{Vocabulary: vocab, IDF: idf, Vectors: vectors}
}
