// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

/*
Package recommend provides the content-similarity recommendation engine.

An Engine is initialized once from a joined movie corpus. Initialization
vectorizes every synopsis with TF-IDF weighting over 1..3 word n-grams,
computes the all-pairs similarity matrix with a sigmoid kernel, and prepares
a fuzzy title matcher. The resulting EngineState is immutable.

Queries compose three steps:

 1. the free-text query is matched against known titles,
 2. the best match's similarity row is looked up,
 3. the row is ranked, excluding the matched title, and the top N titles returned.

Example:

	engine := recommend.NewEngine(recommend.DefaultConfig())
	if _, err := engine.InitializeFromFiles(ctx, "tmdb_5000_movies.csv", "tmdb_5000_credits.csv"); err != nil {
	    return err
	}
	res, _ := engine.Query("avtar", 10)
	for _, r := range res.Recommendations {
	    fmt.Println(r.Title, r.Score)
	}

A title outside the corpus produces an empty recommendation list, never an
error. Row lookups for unknown titles return *NotFoundError.
*/
package recommend
