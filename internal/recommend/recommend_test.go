// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package recommend

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/reelmatch/reelmatch/internal/corpus"
)

func toyCorpus() *corpus.Corpus {
	return corpus.New([]corpus.Movie{
		{ID: 1, OriginalTitle: "Dog1", Overview: "a dog runs"},
		{ID: 2, OriginalTitle: "Dog2", Overview: "a dog plays"},
		{ID: 3, OriginalTitle: "Cat1", Overview: "a cat sleeps"},
		{ID: 4, OriginalTitle: "Car1", Overview: "a car drives"},
	})
}

func buildState(t *testing.T, c *corpus.Corpus, mutate func(*Config)) *EngineState {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := Build(context.Background(), c, cfg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return s
}

func titles(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

func TestRecommend_ToyCorpusDefaultConfig(t *testing.T) {
	t.Parallel()

	s := buildState(t, toyCorpus(), nil)
	got := titles(s.Recommend("Dog1", 2))

	if !reflect.DeepEqual(got, []string{"Dog2", "Cat1"}) {
		t.Fatalf("Recommend(Dog1, 2) = %v, want [Dog2 Cat1]", got)
	}
	if indexOf(got, "Dog1") >= 0 {
		t.Error("Recommend returned the queried title")
	}
	if car := indexOf(got, "Car1"); car >= 0 && car < indexOf(got, "Dog2") {
		t.Error("Car1 ranked above Dog2")
	}
}

func TestRecommend_ToyCorpusSharedTerm(t *testing.T) {
	t.Parallel()

	for _, minDF := range []int{1, 2} {
		s := buildState(t, toyCorpus(), func(c *Config) { c.MinDocFreq = minDF })
		recs := s.Recommend("Dog1", 3)
		got := titles(recs)

		if len(got) != 3 || got[0] != "Dog2" {
			t.Fatalf("min_df=%d: Recommend(Dog1, 3) = %v, want Dog2 first", minDF, got)
		}
		if indexOf(got, "Dog1") >= 0 {
			t.Errorf("min_df=%d: queried title returned", minDF)
		}
		if recs[0].Score <= recs[len(recs)-1].Score {
			t.Errorf("min_df=%d: shared term should raise score: %v", minDF, recs)
		}
	}
}

func TestRecommend_Properties(t *testing.T) {
	t.Parallel()

	s := buildState(t, toyCorpus(), func(c *Config) { c.MinDocFreq = 1 })

	if got := s.Recommend("Title Not In Corpus", 5); got == nil || len(got) != 0 {
		t.Errorf("unknown title should give empty, non-nil result, got %v", got)
	}
	// Only three other movies exist.
	if got := s.Recommend("Cat1", 10); len(got) != 3 {
		t.Errorf("Recommend(Cat1, 10) returned %d results, want 3", len(got))
	}
	if got := s.Recommend("Cat1", 1); len(got) != 1 {
		t.Errorf("Recommend(Cat1, 1) returned %d results, want 1", len(got))
	}
	// topN <= 0 falls back to the default of 10.
	if got := s.Recommend("Cat1", 0); len(got) != 3 {
		t.Errorf("Recommend(Cat1, 0) returned %d results, want 3", len(got))
	}

	m := s.Matrix()
	for i := 0; i < m.Size(); i++ {
		for j := 0; j < m.Size(); j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("matrix asymmetric at (%d,%d)", i, j)
			}
			if m.At(i, j) > m.At(i, i) {
				t.Errorf("row %d exceeds its diagonal at %d", i, j)
			}
		}
	}
}

func TestRecommend_DuplicateTitles(t *testing.T) {
	t.Parallel()

	c := corpus.New([]corpus.Movie{
		{ID: 1, OriginalTitle: "Hamlet", Overview: "prince of denmark seeks revenge"},
		{ID: 2, OriginalTitle: "Macbeth", Overview: "scottish general seeks the crown"},
		{ID: 3, OriginalTitle: "Hamlet", Overview: "prince of denmark seeks revenge"},
	})
	s := buildState(t, c, func(c *Config) { c.MinDocFreq = 1 })

	got := titles(s.Recommend("Hamlet", 5))
	if !reflect.DeepEqual(got, []string{"Macbeth"}) {
		t.Errorf("Recommend(Hamlet) = %v, want [Macbeth]", got)
	}
}

func TestRow(t *testing.T) {
	t.Parallel()

	s := buildState(t, toyCorpus(), nil)

	row, err := s.Row("Cat1")
	if err != nil {
		t.Fatalf("Row(Cat1) error = %v", err)
	}
	if len(row) != 4 {
		t.Fatalf("len(row) = %d, want 4", len(row))
	}
	for i, r := range row {
		if r.Index != i || math.Abs(r.Score-math.Tanh(1)) > 1e-12 {
			t.Errorf("row[%d] = %+v, want tanh(1)", i, r)
		}
	}

	_, err = s.Row("Missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Title != "Missing" {
		t.Errorf("expected *NotFoundError for Missing, got %v", err)
	}
}

func TestQuery(t *testing.T) {
	t.Parallel()

	s := buildState(t, toyCorpus(), func(c *Config) { c.MinDocFreq = 2 })

	res := s.Query("dg1", 2)
	if res.MatchedTitle != "Dog1" {
		t.Fatalf("MatchedTitle = %q, want Dog1", res.MatchedTitle)
	}
	if len(res.Matches) != 3 || res.Matches[0] != "Dog1" {
		t.Errorf("Matches = %v", res.Matches)
	}
	if !res.Found() || res.Recommendations[0].Title != "Dog2" {
		t.Errorf("Recommendations = %v", res.Recommendations)
	}

	empty := s.Query("   ", 2)
	if empty.Found() || empty.MatchedTitle != "" || len(empty.Matches) != 0 {
		t.Errorf("blank query should produce nothing, got %+v", empty)
	}
}

func TestEngine_Lifecycle(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultConfig())
	if e.Ready() {
		t.Error("new engine should not be ready")
	}
	if _, err := e.Query("dog", 2); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
	if e.Status().Initialized {
		t.Error("status should report uninitialized")
	}

	if _, err := e.Initialize(context.Background(), toyCorpus()); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if !e.Ready() {
		t.Error("engine should be ready")
	}
	if _, err := e.Initialize(context.Background(), toyCorpus()); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Initialize should fail, got %v", err)
	}

	st := e.Status()
	if !st.Initialized || st.Records != 4 || st.Vocabulary != 0 || st.Kernel != "sigmoid" {
		t.Errorf("unexpected status %+v", st)
	}

	res, err := e.Query("Dog1", 2)
	if err != nil || len(res.Recommendations) != 2 {
		t.Errorf("Query() = %+v, %v", res, err)
	}
}

func TestEngine_InitializeFromFilesMissing(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultConfig())
	_, err := e.InitializeFromFiles(context.Background(), "/nonexistent/movies.csv", "/nonexistent/credits.csv")
	if !errors.Is(err, corpus.ErrDataLoad) {
		t.Errorf("expected corpus.ErrDataLoad, got %v", err)
	}
	if e.Ready() {
		t.Error("failed initialization must leave the engine unready")
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero min df", func(c *Config) { c.MinDocFreq = 0 }, true},
		{"zero ngram", func(c *Config) { c.MaxNGram = 0 }, true},
		{"zero top n", func(c *Config) { c.DefaultTopN = 0 }, true},
		{"zero match limit", func(c *Config) { c.MatchLimit = 0 }, true},
		{"negative workers", func(c *Config) { c.BuildWorkers = -1 }, true},
		{"unknown kernel", func(c *Config) { c.Kernel = "rbf" }, true},
		{"cosine kernel", func(c *Config) { c.Kernel = "cosine" }, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
