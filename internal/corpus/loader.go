// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/reelmatch/reelmatch/internal/logging"
)

// Default identifier columns of the movies and credits datasets.
const (
	DefaultMoviesIDColumn  = "id"
	DefaultCreditsIDColumn = "movie_id"
)

// Columns required in the movies dataset besides its identifier.
const (
	columnOriginalTitle = "original_title"
	columnOverview      = "overview"
)

// droppedColumns are removed from the joined record set. "title" appears in
// both datasets and duplicates original_title.
var droppedColumns = map[string]struct{}{
	"homepage":             {},
	"title":                {},
	"status":               {},
	"production_countries": {},
}

// mappedColumns are decoded into typed Movie fields rather than Extra.
var mappedColumns = map[string]struct{}{
	"original_title":    {},
	"overview":          {},
	"tagline":           {},
	"genres":            {},
	"keywords":          {},
	"budget":            {},
	"revenue":           {},
	"release_date":      {},
	"runtime":           {},
	"original_language": {},
	"popularity":        {},
	"vote_average":      {},
	"vote_count":        {},
	"cast":              {},
	"crew":              {},
}

// Source is one tabular dataset in CSV form with a header row.
type Source struct {
	// Name identifies the dataset in errors and logs (usually the file path).
	Name   string
	Reader io.Reader
}

// Options controls how the two datasets are joined.
type Options struct {
	// MoviesIDColumn is the identifier column of the movies dataset.
	MoviesIDColumn string
	// CreditsIDColumn is the identifier column of the credits dataset; it is
	// renamed to MoviesIDColumn before the join.
	CreditsIDColumn string
}

func (o Options) withDefaults() Options {
	if o.MoviesIDColumn == "" {
		o.MoviesIDColumn = DefaultMoviesIDColumn
	}
	if o.CreditsIDColumn == "" {
		o.CreditsIDColumn = DefaultCreditsIDColumn
	}
	return o
}

// LoadFiles reads the movies and credits CSV files and joins them.
func LoadFiles(moviesPath, creditsPath string, opts Options) (*Corpus, error) {
	moviesFile, err := os.Open(moviesPath) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, NewDataLoadError(moviesPath, "unreadable source", err)
	}
	defer moviesFile.Close()

	creditsFile, err := os.Open(creditsPath) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, NewDataLoadError(creditsPath, "unreadable source", err)
	}
	defer creditsFile.Close()

	return Load(
		Source{Name: moviesPath, Reader: moviesFile},
		Source{Name: creditsPath, Reader: creditsFile},
		opts,
	)
}

// Load joins the movies and credits datasets on their identifier columns.
//
// The credits identifier is renamed to the movies identifier, the datasets are
// inner-joined in movies order, unneeded columns are dropped, and a missing
// synopsis becomes the empty string. It returns a DataLoadError when either
// source cannot be parsed, a required column is absent, or the join is empty.
func Load(movies, credits Source, opts Options) (*Corpus, error) {
	start := time.Now()
	opts = opts.withDefaults()

	mt, err := readTable(movies)
	if err != nil {
		return nil, err
	}
	if err := mt.require(opts.MoviesIDColumn, columnOriginalTitle, columnOverview); err != nil {
		return nil, err
	}

	ct, err := readTable(credits)
	if err != nil {
		return nil, err
	}
	if err := ct.require(opts.CreditsIDColumn); err != nil {
		return nil, err
	}
	ct.rename(opts.CreditsIDColumn, opts.MoviesIDColumn)

	creditsByID := make(map[int64][]int, len(ct.rows))
	for i, row := range ct.rows {
		id, err := ct.id(row, opts.MoviesIDColumn, i)
		if err != nil {
			return nil, err
		}
		creditsByID[id] = append(creditsByID[id], i)
	}

	records := make([]Movie, 0, len(mt.rows))
	for i, row := range mt.rows {
		id, err := mt.id(row, opts.MoviesIDColumn, i)
		if err != nil {
			return nil, err
		}
		for _, ci := range creditsByID[id] {
			records = append(records, buildMovie(id, mt, row, ct, ct.rows[ci], opts.MoviesIDColumn))
		}
	}

	if len(records) == 0 {
		return nil, NewDataLoadError(
			movies.Name+" + "+credits.Name,
			"join on "+opts.MoviesIDColumn+" produced zero rows",
			nil,
		)
	}

	c := New(records)
	logging.Info().
		Int("movies_rows", len(mt.rows)).
		Int("credits_rows", len(ct.rows)).
		Int("records", c.Len()).
		Int("unique_titles", c.UniqueTitles()).
		Dur("duration", time.Since(start)).
		Msg("Corpus loaded")
	return c, nil
}

// table is a parsed CSV dataset.
type table struct {
	name   string
	header []string
	cols   map[string]int
	rows   [][]string
}

func readTable(src Source) (*table, error) {
	if src.Reader == nil {
		return nil, NewDataLoadError(src.Name, "unreadable source", errors.New("nil reader"))
	}

	r := csv.NewReader(src.Reader)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, NewDataLoadError(src.Name, "empty dataset", nil)
	}
	if err != nil {
		return nil, NewDataLoadError(src.Name, "malformed header", err)
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, NewDataLoadError(src.Name, "malformed rows", err)
	}

	t := &table{name: src.Name, header: header, cols: make(map[string]int, len(header)), rows: rows}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		t.header[i] = h
		if _, dup := t.cols[h]; !dup {
			t.cols[h] = i
		}
	}
	return t, nil
}

func (t *table) require(columns ...string) error {
	for _, c := range columns {
		if _, ok := t.cols[c]; !ok {
			return NewDataLoadError(t.name, fmt.Sprintf("missing column %q", c), nil)
		}
	}
	return nil
}

func (t *table) rename(from, to string) {
	if from == to {
		return
	}
	i := t.cols[from]
	delete(t.cols, from)
	t.cols[to] = i
	t.header[i] = to
}

func (t *table) value(row []string, column string) string {
	i, ok := t.cols[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (t *table) id(row []string, column string, rowNum int) (int64, error) {
	raw := strings.TrimSpace(t.value(row, column))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// 1-based data row, header excluded.
		return 0, NewDataLoadError(t.name, fmt.Sprintf("invalid %s %q on row %d", column, raw, rowNum+1), err)
	}
	return id, nil
}

func buildMovie(id int64, mt *table, mrow []string, ct *table, crow []string, idColumn string) Movie {
	m := Movie{
		ID:            id,
		OriginalTitle: mt.value(mrow, columnOriginalTitle),
		Overview:      mt.value(mrow, columnOverview),
		Tagline:       mt.value(mrow, "tagline"),
		Genres:        parseNames(mt.value(mrow, "genres")),
		Keywords:      parseNames(mt.value(mrow, "keywords")),
		Budget:        parseInt(mt.value(mrow, "budget")),
		Revenue:       parseInt(mt.value(mrow, "revenue")),
		ReleaseDate:   strings.TrimSpace(mt.value(mrow, "release_date")),
		Runtime:       parseFloat(mt.value(mrow, "runtime")),
		Language:      mt.value(mrow, "original_language"),
		Popularity:    parseFloat(mt.value(mrow, "popularity")),
		VoteAverage:   parseFloat(mt.value(mrow, "vote_average")),
		VoteCount:     parseInt(mt.value(mrow, "vote_count")),
		Cast:          parseNames(ct.value(crow, "cast")),
		Directors:     parseCrew(ct.value(crow, "crew"), "Director"),
	}

	collectExtra(&m, mt, mrow, idColumn)
	collectExtra(&m, ct, crow, idColumn)
	return m
}

func collectExtra(m *Movie, t *table, row []string, idColumn string) {
	for i, col := range t.header {
		if col == idColumn || i >= len(row) {
			continue
		}
		if _, drop := droppedColumns[col]; drop {
			continue
		}
		if _, mapped := mappedColumns[col]; mapped {
			continue
		}
		if m.Extra == nil {
			m.Extra = make(map[string]string)
		}
		if _, exists := m.Extra[col]; !exists {
			m.Extra[col] = row[i]
		}
	}
}

// namedEntry is the shape shared by the JSON-encoded genres, keywords, cast
// and crew columns.
type namedEntry struct {
	Name string `json:"name"`
	Job  string `json:"job,omitempty"`
}

func decodeEntries(raw string) []namedEntry {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "[]" {
		return nil
	}
	var entries []namedEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logging.Debug().Err(err).Msg("Skipping malformed JSON column value")
		return nil
	}
	return entries
}

func parseNames(raw string) []string {
	entries := decodeEntries(raw)
	if len(entries) == 0 {
		return []string{}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Name != "" {
			names = append(names, e.Name)
		}
	}
	return names
}

func parseCrew(raw, job string) []string {
	var names []string
	for _, e := range decodeEntries(raw) {
		if e.Job == job && e.Name != "" {
			names = append(names, e.Name)
		}
	}
	return names
}

func parseInt(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int64(f)
	}
	return 0
}

func parseFloat(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}
