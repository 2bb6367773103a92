// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/reelmatch/reelmatch/internal/corpus"
	"github.com/reelmatch/reelmatch/internal/logging"
	"github.com/reelmatch/reelmatch/internal/matcher"
	"github.com/reelmatch/reelmatch/internal/metrics"
	"github.com/reelmatch/reelmatch/internal/textsim"
)

// EngineState is the fully built, read-only recommendation state: the
// corpus, its term space, the similarity matrix and the title matcher.
// Every method is safe for concurrent use without locking.
type EngineState struct {
	corpus  *corpus.Corpus
	space   *textsim.TermSpace
	matrix  *textsim.Matrix
	kernel  textsim.Kernel
	matcher *matcher.Matcher
	cfg     Config

	builtAt       time.Time
	buildDuration time.Duration
}

// Build vectorizes every synopsis in c, computes the all-pairs similarity
// matrix and prepares the title matcher.
func Build(ctx context.Context, c *corpus.Corpus, cfg Config) (*EngineState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	start := time.Now()

	vecStart := time.Now()
	space := textsim.NewVectorizer(textsim.VectorizerConfig{
		MinDocFreq: cfg.MinDocFreq,
		MinNGram:   1,
		MaxNGram:   cfg.MaxNGram,
	}).FitTransform(c.Overviews())
	metrics.RecordEngineBuild("vectorize", time.Since(vecStart))

	kernel, err := textsim.NewKernel(cfg.Kernel, space.Dimensions())
	if err != nil {
		return nil, err
	}

	matStart := time.Now()
	matrix, err := textsim.BuildMatrix(ctx, space.Vectors, kernel, cfg.BuildWorkers)
	if err != nil {
		return nil, fmt.Errorf("build similarity matrix: %w", err)
	}
	metrics.RecordEngineBuild("matrix", time.Since(matStart))

	s := &EngineState{
		corpus:        c,
		space:         space,
		matrix:        matrix,
		kernel:        kernel,
		matcher:       matcher.New(uniqueTitles(c)),
		cfg:           cfg,
		builtAt:       time.Now(),
		buildDuration: time.Since(start),
	}
	metrics.RecordEngineBuild("total", s.buildDuration)

	if space.Dimensions() == 0 {
		logging.Warn().
			Int("min_doc_freq", cfg.MinDocFreq).
			Msg("Vocabulary is empty; every pair of movies will score equally")
	}
	logging.Info().
		Int("records", c.Len()).
		Int("vocabulary", space.Dimensions()).
		Str("kernel", kernel.Name()).
		Dur("duration", s.buildDuration).
		Msg("Similarity engine built")
	return s, nil
}

// uniqueTitles lists each distinct title once, in order of first appearance.
func uniqueTitles(c *corpus.Corpus) []string {
	seen := make(map[string]struct{}, c.Len())
	out := make([]string, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		t := c.Title(i)
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Corpus returns the loaded corpus.
func (s *EngineState) Corpus() *corpus.Corpus { return s.corpus }

// Space returns the fitted term space.
func (s *EngineState) Space() *textsim.TermSpace { return s.space }

// Matrix returns the similarity matrix.
func (s *EngineState) Matrix() *textsim.Matrix { return s.matrix }

// Row returns the similarity of title against every corpus position. It
// returns a NotFoundError when the title is not indexed.
func (s *EngineState) Row(title string) ([]ScoredIndex, error) {
	idx, ok := s.corpus.IndexOf(title)
	if !ok {
		return nil, &NotFoundError{Title: title}
	}
	row := s.matrix.Row(idx)
	out := make([]ScoredIndex, len(row))
	for i, score := range row {
		out[i] = ScoredIndex{Index: i, Score: score}
	}
	return out, nil
}

// Recommendation is one ranked similar movie.
type Recommendation struct {
	Title string  `json:"title"`
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// Recommend returns up to topN titles most similar to title, best first. A
// title outside the index yields an empty result rather than an error. The
// queried title never appears in the result, including other records that
// share it. topN <= 0 uses the configured default.
func (s *EngineState) Recommend(title string, topN int) []Recommendation {
	if topN <= 0 {
		topN = s.cfg.DefaultTopN
	}
	idx, ok := s.corpus.IndexOf(title)
	if !ok {
		return []Recommendation{}
	}

	ranked := Rank(s.matrix.Row(idx), topN, func(i int) bool {
		return i == idx || s.corpus.Title(i) == title
	})
	out := make([]Recommendation, len(ranked))
	for i, r := range ranked {
		out[i] = Recommendation{Title: s.corpus.Title(r.Index), Index: r.Index, Score: r.Score}
	}
	return out
}

// Match returns up to limit known titles closest to query. limit <= 0 uses
// the configured match limit.
func (s *EngineState) Match(query string, limit int) []matcher.Match {
	if limit <= 0 {
		limit = s.cfg.MatchLimit
	}
	return s.matcher.Match(query, limit)
}

// QueryResult is the outcome of resolving a free-text query and ranking
// recommendations for the best match.
type QueryResult struct {
	Query string `json:"query"`
	// Matches are the fuzzy title candidates, best first.
	Matches []string `json:"matches"`
	// MatchedTitle is the candidate recommendations were computed for; empty
	// when nothing matched.
	MatchedTitle    string           `json:"matched_title,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Found reports whether any recommendations were produced.
func (r *QueryResult) Found() bool {
	return len(r.Recommendations) > 0
}

// Query resolves query with the title matcher, then ranks up to topN
// recommendations for the first match.
func (s *EngineState) Query(query string, topN int) *QueryResult {
	start := time.Now()
	matches := s.Match(query, 0)

	res := &QueryResult{
		Query:           query,
		Matches:         matcher.Titles(matches),
		Recommendations: []Recommendation{},
	}
	if len(matches) > 0 {
		res.MatchedTitle = matches[0].Title
		res.Recommendations = s.Recommend(res.MatchedTitle, topN)
	}
	metrics.RecordQuery(res.MatchedTitle != "", time.Since(start))
	return res
}

// Status summarizes a built engine.
type Status struct {
	Initialized    bool      `json:"initialized"`
	Records        int       `json:"records"`
	UniqueTitles   int       `json:"unique_titles"`
	Vocabulary     int       `json:"vocabulary"`
	Kernel         string    `json:"kernel"`
	MinDocFreq     int       `json:"min_doc_freq"`
	MaxNGram       int       `json:"max_ngram"`
	BuildDuration  string    `json:"build_duration"`
	BuildDurationS float64   `json:"build_duration_seconds"`
	BuiltAt        time.Time `json:"built_at"`
}

// Status returns a summary of the state.
func (s *EngineState) Status() Status {
	return Status{
		Initialized:    true,
		Records:        s.corpus.Len(),
		UniqueTitles:   s.corpus.UniqueTitles(),
		Vocabulary:     s.space.Dimensions(),
		Kernel:         s.kernel.Name(),
		MinDocFreq:     s.cfg.MinDocFreq,
		MaxNGram:       s.cfg.MaxNGram,
		BuildDuration:  s.buildDuration.String(),
		BuildDurationS: s.buildDuration.Seconds(),
		BuiltAt:        s.builtAt,
	}
}
