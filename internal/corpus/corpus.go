// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package corpus

// TitleIndex maps an original title to its position in a Corpus.
type TitleIndex map[string]int

// BuildTitleIndex maps each original title to its first position in movies.
// Later records that repeat a title are not indexed.
func BuildTitleIndex(movies []Movie) TitleIndex {
	idx := make(TitleIndex, len(movies))
	for i := range movies {
		if _, seen := idx[movies[i].OriginalTitle]; !seen {
			idx[movies[i].OriginalTitle] = i
		}
	}
	return idx
}

// Corpus is the ordered, immutable record set. Positions 0..Len()-1 are the
// stable keys shared with the similarity matrix for the life of the process.
type Corpus struct {
	movies []Movie
	index  TitleIndex
}

// New creates a Corpus over movies. The slice is owned by the Corpus afterwards.
func New(movies []Movie) *Corpus {
	return &Corpus{
		movies: movies,
		index:  BuildTitleIndex(movies),
	}
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	return len(c.movies)
}

// At returns the record at position i. It panics if i is out of range.
func (c *Corpus) At(i int) *Movie {
	return &c.movies[i]
}

// Title returns the original title at position i.
func (c *Corpus) Title(i int) string {
	return c.movies[i].OriginalTitle
}

// IndexOf resolves a title to its position.
func (c *Corpus) IndexOf(title string) (int, bool) {
	i, ok := c.index[title]
	return i, ok
}

// Lookup returns the first record carrying title.
func (c *Corpus) Lookup(title string) (*Movie, bool) {
	i, ok := c.index[title]
	if !ok {
		return nil, false
	}
	return &c.movies[i], true
}

// Titles returns every original title in corpus order, duplicates included.
func (c *Corpus) Titles() []string {
	out := make([]string, len(c.movies))
	for i := range c.movies {
		out[i] = c.movies[i].OriginalTitle
	}
	return out
}

// Overviews returns every synopsis in corpus order.
func (c *Corpus) Overviews() []string {
	out := make([]string, len(c.movies))
	for i := range c.movies {
		out[i] = c.movies[i].Overview
	}
	return out
}

// UniqueTitles returns the number of distinct titles.
func (c *Corpus) UniqueTitles() int {
	return len(c.index)
}
