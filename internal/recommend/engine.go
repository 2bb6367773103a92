// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package recommend

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/reelmatch/reelmatch/internal/corpus"
	"github.com/reelmatch/reelmatch/internal/metrics"
)

// ErrAlreadyInitialized is returned when Initialize is called on a built engine.
var ErrAlreadyInitialized = errors.New("recommendation engine already initialized")

// Engine owns the lifecycle of an EngineState: it is constructed empty,
// initialized exactly once, and read-only afterwards. It is safe for
// concurrent use.
type Engine struct {
	cfg    Config
	initMu sync.Mutex
	state  atomic.Pointer[EngineState]
}

// NewEngine creates an uninitialized engine.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Initialize builds the engine state from c. It may succeed only once.
func (e *Engine) Initialize(ctx context.Context, c *corpus.Corpus) (*EngineState, error) {
	e.initMu.Lock()
	defer e.initMu.Unlock()

	if e.state.Load() != nil {
		return nil, ErrAlreadyInitialized
	}

	s, err := Build(ctx, c, e.cfg)
	if err != nil {
		return nil, err
	}
	e.state.Store(s)
	metrics.RecordEngineState(c.Len(), s.space.Dimensions())
	return s, nil
}

// InitializeFromFiles loads and joins the movies and credits CSV files, then
// initializes the engine. Load failures are returned as *corpus.DataLoadError.
func (e *Engine) InitializeFromFiles(ctx context.Context, moviesPath, creditsPath string) (*EngineState, error) {
	start := time.Now()
	c, err := corpus.LoadFiles(moviesPath, creditsPath, corpus.Options{})
	if err != nil {
		return nil, err
	}
	metrics.RecordEngineBuild("load", time.Since(start))
	return e.Initialize(ctx, c)
}

// State returns the built state or ErrNotInitialized.
func (e *Engine) State() (*EngineState, error) {
	s := e.state.Load()
	if s == nil {
		return nil, ErrNotInitialized
	}
	return s, nil
}

// Ready reports whether Initialize has succeeded.
func (e *Engine) Ready() bool {
	return e.state.Load() != nil
}

// Query resolves query and returns recommendations for its best match.
func (e *Engine) Query(query string, topN int) (*QueryResult, error) {
	s, err := e.State()
	if err != nil {
		return nil, err
	}
	return s.Query(query, topN), nil
}

// Status returns the engine summary; Initialized is false before Initialize.
func (e *Engine) Status() Status {
	s := e.state.Load()
	if s == nil {
		return Status{MinDocFreq: e.cfg.MinDocFreq, MaxNGram: e.cfg.MaxNGram, Kernel: e.cfg.Kernel}
	}
	return s.Status()
}
