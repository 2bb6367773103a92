// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testMoviesCSV = `budget,genres,homepage,id,original_title,overview,production_countries,release_date,revenue,status,title,spoken_languages
237000000,"[{""id"": 28, ""name"": ""Action""}, {""id"": 12, ""name"": ""Adventure""}]",http://www.avatarmovie.com/,19995,Avatar,"In the 22nd century, a paraplegic Marine is dispatched to the moon Pandora.","[{""iso_3166_1"": ""US""}]",2009-12-10,2787965087,Released,Avatar,"[{""iso_639_1"": ""en""}]"
0,[],,42,Silent Film,,[],,0,Released,Silent Film,[]
5000,[],,7,Orphan,"Has no credits row.",[],,0,Released,Orphan,[]
`

const testCreditsCSV = `movie_id,title,cast,crew
19995,Avatar,"[{""cast_id"": 242, ""character"": ""Jake Sully"", ""name"": ""Sam Worthington"", ""order"": 0}, {""cast_id"": 3, ""character"": ""Neytiri"", ""name"": ""Zoe Saldana"", ""order"": 1}]","[{""job"": ""Director"", ""name"": ""James Cameron""}, {""job"": ""Editor"", ""name"": ""Stephen Rivkin""}]"
42,Silent Film,[],[]
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()

	c, err := LoadFiles(
		writeFixture(t, "movies.csv", testMoviesCSV),
		writeFixture(t, "credits.csv", testCreditsCSV),
		Options{},
	)
	if err != nil {
		t.Fatalf("LoadFiles() error = %v", err)
	}

	// Orphan has no credits row and is dropped by the inner join.
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	avatar := c.At(0)
	if avatar.ID != 19995 || avatar.OriginalTitle != "Avatar" {
		t.Errorf("At(0) = %d %q, want 19995 Avatar", avatar.ID, avatar.OriginalTitle)
	}
	if got := strings.Join(avatar.Genres, ", "); got != "Action, Adventure" {
		t.Errorf("Genres = %q", got)
	}
	if got := strings.Join(avatar.Cast, ", "); got != "Sam Worthington, Zoe Saldana" {
		t.Errorf("Cast = %q", got)
	}
	if len(avatar.Directors) != 1 || avatar.Directors[0] != "James Cameron" {
		t.Errorf("Directors = %v", avatar.Directors)
	}
	if avatar.Budget != 237000000 || avatar.Revenue != 2787965087 {
		t.Errorf("Budget/Revenue = %d/%d", avatar.Budget, avatar.Revenue)
	}
	if avatar.ReleaseDate != "2009-12-10" {
		t.Errorf("ReleaseDate = %q", avatar.ReleaseDate)
	}

	for _, dropped := range []string{"homepage", "title", "status", "production_countries"} {
		if _, ok := avatar.Extra[dropped]; ok {
			t.Errorf("column %q should have been dropped", dropped)
		}
	}
	if _, ok := avatar.Extra["spoken_languages"]; !ok {
		t.Error("expected passthrough column spoken_languages in Extra")
	}

	silent, ok := c.Lookup("Silent Film")
	if !ok {
		t.Fatal("Lookup(Silent Film) not found")
	}
	if silent.Overview != "" {
		t.Errorf("missing overview should be empty, got %q", silent.Overview)
	}
	if silent.Genres == nil || silent.Cast == nil {
		t.Error("empty JSON columns should decode to empty, non-nil slices")
	}
}

func TestLoad_NoOverlappingIdentifiers(t *testing.T) {
	t.Parallel()

	movies := "id,original_title,overview\n1,A,first\n2,B,second\n"
	credits := "movie_id,title,cast,crew\n3,C,[],[]\n4,D,[],[]\n"

	_, err := Load(
		Source{Name: "movies", Reader: strings.NewReader(movies)},
		Source{Name: "credits", Reader: strings.NewReader(credits)},
		Options{},
	)
	if err == nil {
		t.Fatal("expected DataLoadError for empty join")
	}
	if !errors.Is(err, ErrDataLoad) {
		t.Errorf("errors.Is(err, ErrDataLoad) = false for %v", err)
	}
	var dle *DataLoadError
	if !errors.As(err, &dle) {
		t.Fatalf("expected *DataLoadError, got %T", err)
	}
	if !strings.Contains(dle.Reason, "zero rows") {
		t.Errorf("Reason = %q", dle.Reason)
	}
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		movies  string
		credits string
		reason  string
	}{
		{
			name:    "empty movies",
			movies:  "",
			credits: "movie_id,cast\n1,[]\n",
			reason:  "empty dataset",
		},
		{
			name:    "missing overview column",
			movies:  "id,original_title\n1,A\n",
			credits: "movie_id,cast\n1,[]\n",
			reason:  `missing column "overview"`,
		},
		{
			name:    "missing credits identifier",
			movies:  "id,original_title,overview\n1,A,x\n",
			credits: "id,cast\n1,[]\n",
			reason:  `missing column "movie_id"`,
		},
		{
			name:    "ragged rows",
			movies:  "id,original_title,overview\n1,A\n",
			credits: "movie_id,cast\n1,[]\n",
			reason:  "malformed rows",
		},
		{
			name:    "non-numeric identifier",
			movies:  "id,original_title,overview\nabc,A,x\n",
			credits: "movie_id,cast\n1,[]\n",
			reason:  "invalid id",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(
				Source{Name: "movies", Reader: strings.NewReader(tt.movies)},
				Source{Name: "credits", Reader: strings.NewReader(tt.credits)},
				Options{},
			)
			var dle *DataLoadError
			if !errors.As(err, &dle) {
				t.Fatalf("expected *DataLoadError, got %v", err)
			}
			if !strings.Contains(dle.Reason, tt.reason) {
				t.Errorf("Reason = %q, want substring %q", dle.Reason, tt.reason)
			}
		})
	}
}

func TestLoadFiles_Unreadable(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.csv")
	_, err := LoadFiles(missing, missing, Options{})
	if !errors.Is(err, ErrDataLoad) {
		t.Fatalf("expected ErrDataLoad, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestLoad_CustomIdentifierColumns(t *testing.T) {
	t.Parallel()

	movies := "tmdb_id,original_title,overview\n10,Heat,A heist.\n"
	credits := "film,cast\n10,\"[{\"\"name\"\": \"\"Al Pacino\"\"}]\"\n"

	c, err := Load(
		Source{Name: "movies", Reader: strings.NewReader(movies)},
		Source{Name: "credits", Reader: strings.NewReader(credits)},
		Options{MoviesIDColumn: "tmdb_id", CreditsIDColumn: "film"},
	)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 1 || c.At(0).Cast[0] != "Al Pacino" {
		t.Errorf("unexpected corpus: len=%d cast=%v", c.Len(), c.At(0).Cast)
	}
}
