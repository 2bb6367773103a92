// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package tmdb

// Fallback text used when the API omits a field.
const (
	NotAvailable       = "N/A"
	NoOverviewFallback = "No overview available."
)

// searchResponse is the body of GET /search/movie.
type searchResponse struct {
	Page         int            `json:"page"`
	TotalResults int            `json:"total_results"`
	Results      []searchResult `json:"results"`
}

type searchResult struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	PosterPath    *string `json:"poster_path"`
	ReleaseDate   string  `json:"release_date"`
}

// movieResponse is the body of GET /movie/{id}.
type movieResponse struct {
	ID            int64   `json:"id"`
	OriginalTitle *string `json:"original_title"`
	Overview      *string `json:"overview"`
	ReleaseDate   *string `json:"release_date"`
	Budget        *int64  `json:"budget"`
	Revenue       *int64  `json:"revenue"`
	PosterPath    *string `json:"poster_path"`
	Genres        []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

// creditsResponse is the body of GET /movie/{id}/credits.
type creditsResponse struct {
	ID   int64 `json:"id"`
	Cast []struct {
		Name      string `json:"name"`
		Character string `json:"character"`
		Order     int    `json:"order"`
	} `json:"cast"`
}

// SearchHit is the first search result for a title.
type SearchHit struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path,omitempty"`
}

// Details is the display metadata for one movie.
type Details struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseDate string   `json:"release_date"`
	Budget      string   `json:"budget"`
	Revenue     string   `json:"revenue"`
	Genres      string   `json:"genres"`
	GenreList   []string `json:"genre_list"`
	Cast        string   `json:"cast"`
	CastList    []string `json:"cast_list"`
	PosterURL   string   `json:"poster_url,omitempty"`
}

// Poster is a fetched poster image.
type Poster struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}
