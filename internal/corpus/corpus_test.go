// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package corpus

import "testing"

func TestBuildTitleIndex_KeepsFirst(t *testing.T) {
	t.Parallel()

	movies := []Movie{
		{ID: 1, OriginalTitle: "Hamlet"},
		{ID: 2, OriginalTitle: "Heat"},
		{ID: 3, OriginalTitle: "Hamlet"},
	}

	idx := BuildTitleIndex(movies)
	if len(idx) != 2 {
		t.Fatalf("len(index) = %d, want 2", len(idx))
	}
	if idx["Hamlet"] != 0 {
		t.Errorf("Hamlet -> %d, want first occurrence 0", idx["Hamlet"])
	}

	c := New(movies)
	if c.Len() != 3 || c.UniqueTitles() != 2 {
		t.Errorf("Len/UniqueTitles = %d/%d, want 3/2", c.Len(), c.UniqueTitles())
	}
	m, ok := c.Lookup("Hamlet")
	if !ok || m.ID != 1 {
		t.Errorf("Lookup(Hamlet) = %v, %v", m, ok)
	}
	if _, ok := c.IndexOf("Casino"); ok {
		t.Error("IndexOf(Casino) should be absent")
	}
	if got := c.Titles(); len(got) != 3 || got[2] != "Hamlet" {
		t.Errorf("Titles() = %v", got)
	}
}

func TestMovie_TopCast(t *testing.T) {
	t.Parallel()

	m := Movie{Cast: []string{"a", "b", "c", "d", "e", "f"}}
	if got := m.TopCast(5); len(got) != 5 || got[4] != "e" {
		t.Errorf("TopCast(5) = %v", got)
	}
	if got := m.TopCast(10); len(got) != 6 {
		t.Errorf("TopCast(10) = %v", got)
	}
	if got := m.TopCast(0); got != nil {
		t.Errorf("TopCast(0) = %v, want nil", got)
	}
}
