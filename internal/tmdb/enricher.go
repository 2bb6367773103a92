// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

// Package tmdb is the metadata enrichment collaborator: it fetches posters
// and movie details from the TMDB v3 API.
//
// Every public operation returns a Lookup. Network errors, timeouts, an
// open circuit breaker and empty searches all become an absent result so
// the recommendation path never fails because of this package.
package tmdb

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/reelmatch/reelmatch/internal/logging"
	"github.com/reelmatch/reelmatch/internal/metrics"
)

// Enricher fetches presentation metadata for a title.
type Enricher interface {
	// PosterURL resolves the poster image URL without downloading it.
	PosterURL(ctx context.Context, title string) Lookup[string]
	// FetchPoster downloads the poster image.
	FetchPoster(ctx context.Context, title string) Lookup[Poster]
	// FetchDetails returns title, overview, release date, budget, revenue,
	// genres and top cast.
	FetchDetails(ctx context.Context, title string) Lookup[Details]
	// Enabled reports whether lookups can ever be present.
	Enabled() bool
}

var _ Enricher = (*Client)(nil)

// Enabled implements Enricher.
func (c *Client) Enabled() bool { return true }

// PosterURL implements Enricher.
func (c *Client) PosterURL(ctx context.Context, title string) Lookup[string] {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	hit, err := c.Search(ctx, title)
	if err != nil {
		return absentFrom[string](ctx, "poster_url", title, start, err)
	}
	if hit.PosterPath == "" {
		observe("poster_url", "absent", start)
		return Absent[string](ReasonNoPoster)
	}
	observe("poster_url", "success", start)
	return Found(c.ImageURL(hit.PosterPath))
}

// FetchPoster implements Enricher.
func (c *Client) FetchPoster(ctx context.Context, title string) Lookup[Poster] {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	hit, err := c.Search(ctx, title)
	if err != nil {
		return absentFrom[Poster](ctx, "poster", title, start, err)
	}
	if hit.PosterPath == "" {
		observe("poster", "absent", start)
		return Absent[Poster](ReasonNoPoster)
	}

	imageURL := c.ImageURL(hit.PosterPath)
	img, err := c.Image(ctx, imageURL)
	if err != nil {
		return absentFrom[Poster](ctx, "poster", title, start, err)
	}
	observe("poster", "success", start)
	return Found(Poster{Title: title, URL: imageURL, ContentType: img.contentType, Data: img.body})
}

// FetchDetails implements Enricher.
func (c *Client) FetchDetails(ctx context.Context, title string) Lookup[Details] {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	hit, err := c.Search(ctx, title)
	if err != nil {
		return absentFrom[Details](ctx, "details", title, start, err)
	}

	cacheKey := strconv.FormatInt(hit.ID, 10)
	if d, ok := c.detailsCache.Get(cacheKey); ok {
		recordCache(true)
		observe("details", "success", start)
		return Found(d)
	}
	recordCache(false)

	movie, err := c.Movie(ctx, hit.ID)
	if err != nil {
		return absentFrom[Details](ctx, "details", title, start, err)
	}
	cast, err := c.Cast(ctx, hit.ID)
	if err != nil {
		return absentFrom[Details](ctx, "details", title, start, err)
	}

	d := buildDetails(movie, cast)
	if movie.PosterPath != nil && *movie.PosterPath != "" {
		d.PosterURL = c.ImageURL(*movie.PosterPath)
	} else if hit.PosterPath != "" {
		d.PosterURL = c.ImageURL(hit.PosterPath)
	}
	c.detailsCache.Set(cacheKey, d)

	observe("details", "success", start)
	return Found(d)
}

func buildDetails(m *movieResponse, cast []string) Details {
	d := Details{
		ID:          m.ID,
		Title:       stringOr(m.OriginalTitle, NotAvailable),
		Overview:    stringOr(m.Overview, NoOverviewFallback),
		ReleaseDate: stringOr(m.ReleaseDate, NotAvailable),
		Budget:      intOr(m.Budget, NotAvailable),
		Revenue:     intOr(m.Revenue, NotAvailable),
		GenreList:   make([]string, 0, len(m.Genres)),
		CastList:    cast,
	}
	for _, g := range m.Genres {
		d.GenreList = append(d.GenreList, g.Name)
	}
	if d.CastList == nil {
		d.CastList = []string{}
	}
	d.Genres = strings.Join(d.GenreList, ", ")
	d.Cast = strings.Join(d.CastList, ", ")
	return d
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func intOr(v *int64, fallback string) string {
	if v == nil {
		return fallback
	}
	return strconv.FormatInt(*v, 10)
}

// absentFrom converts a call error into an absent lookup and records it.
func absentFrom[T any](ctx context.Context, op, title string, start time.Time, err error) Lookup[T] {
	if errors.Is(err, ErrNoResults) {
		observe(op, "absent", start)
		logging.Ctx(ctx).Debug().Str("operation", op).Str("title", title).Msg("No metadata search results")
		return Absent[T](ReasonNoResults)
	}

	observe(op, "error", start)
	reason := ReasonFailed
	var netErr net.Error
	if errors.Is(err, ErrUnavailable) || errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		reason = ReasonUnavailable
	}
	logging.Ctx(ctx).Warn().Err(err).Str("operation", op).Str("title", title).Msg("Metadata lookup failed")
	return Absent[T](reason)
}

func observe(op, result string, start time.Time) {
	metrics.RecordMetadataRequest(op, result, time.Since(start))
}

func recordCache(hit bool) {
	metrics.RecordMetadataCache(hit)
}

// Disabled is the Enricher used when no API key is configured; every lookup
// is absent.
type Disabled struct{}

var _ Enricher = Disabled{}

// Enabled implements Enricher.
func (Disabled) Enabled() bool { return false }

// PosterURL implements Enricher.
func (Disabled) PosterURL(context.Context, string) Lookup[string] {
	return Absent[string](ReasonDisabled)
}

// FetchPoster implements Enricher.
func (Disabled) FetchPoster(context.Context, string) Lookup[Poster] {
	return Absent[Poster](ReasonDisabled)
}

// FetchDetails implements Enricher.
func (Disabled) FetchDetails(context.Context, string) Lookup[Details] {
	return Absent[Details](ReasonDisabled)
}
