// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package corpus

// Movie is one joined record of the movies and credits datasets.
// Records are created once at load time and never mutated afterwards;
// callers must treat the slice fields as read-only.
type Movie struct {
	ID            int64  `json:"id"`
	OriginalTitle string `json:"original_title"`
	// Overview is the synopsis; never nil, empty when the source had none.
	Overview    string   `json:"overview"`
	Tagline     string   `json:"tagline,omitempty"`
	Genres      []string `json:"genres"`
	Keywords    []string `json:"keywords,omitempty"`
	Budget      int64    `json:"budget"`
	Revenue     int64    `json:"revenue"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Runtime     float64  `json:"runtime,omitempty"`
	Language    string   `json:"original_language,omitempty"`
	Popularity  float64  `json:"popularity,omitempty"`
	VoteAverage float64  `json:"vote_average,omitempty"`
	VoteCount   int64    `json:"vote_count,omitempty"`

	// Cast lists performer names in billing order; Directors comes from the crew column.
	Cast      []string `json:"cast"`
	Directors []string `json:"directors,omitempty"`

	// Extra carries any remaining source columns that are not dropped and not mapped above.
	Extra map[string]string `json:"extra,omitempty"`
}

// TopCast returns up to n cast names in billing order.
func (m *Movie) TopCast(n int) []string {
	if n <= 0 || len(m.Cast) == 0 {
		return nil
	}
	if n > len(m.Cast) {
		n = len(m.Cast)
	}
	out := make([]string, n)
	copy(out, m.Cast[:n])
	return out
}
