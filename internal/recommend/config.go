// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package recommend

import (
	"fmt"

	"github.com/reelmatch/reelmatch/internal/textsim"
)

// Config controls how the engine is built and queried.
type Config struct {
	// MinDocFreq is the minimum number of synopses a term must appear in.
	MinDocFreq int
	// MaxNGram is the longest word sequence counted as a term.
	MaxNGram int
	// Kernel names the similarity function: "sigmoid" (default) or "cosine".
	Kernel string
	// DefaultTopN is used when a query asks for zero recommendations.
	DefaultTopN int
	// MatchLimit is the number of fuzzy title candidates returned per query.
	MatchLimit int
	// BuildWorkers bounds matrix build parallelism; zero uses GOMAXPROCS.
	BuildWorkers int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		MinDocFreq:  3,
		MaxNGram:    3,
		Kernel:      textsim.KernelSigmoid,
		DefaultTopN: 10,
		MatchLimit:  3,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.MinDocFreq < 1 {
		return fmt.Errorf("min_doc_freq must be at least 1, got %d", c.MinDocFreq)
	}
	if c.MaxNGram < 1 {
		return fmt.Errorf("max_ngram must be at least 1, got %d", c.MaxNGram)
	}
	if c.DefaultTopN < 1 {
		return fmt.Errorf("default_top_n must be at least 1, got %d", c.DefaultTopN)
	}
	if c.MatchLimit < 1 {
		return fmt.Errorf("match_limit must be at least 1, got %d", c.MatchLimit)
	}
	if c.BuildWorkers < 0 {
		return fmt.Errorf("build_workers must not be negative, got %d", c.BuildWorkers)
	}
	if _, err := textsim.NewKernel(c.Kernel, 0); err != nil {
		return err
	}
	return nil
}
