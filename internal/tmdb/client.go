// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/reelmatch/reelmatch/internal/cache"
)

var (
	// ErrNoResults is returned when a search finds nothing or an id is unknown.
	ErrNoResults = errors.New("tmdb: no results")

	// ErrUnavailable is returned when the breaker is open or the rate limiter
	// cannot admit a request before the deadline.
	ErrUnavailable = errors.New("tmdb: service unavailable")
)

// maxErrorBodySize limits how much of an error response body is read.
const maxErrorBodySize = 64 * 1024

// readBodyForError reads at most 64KB of r for error reporting.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// response is a fully read HTTP response body.
type response struct {
	body        []byte
	contentType string
}

// Client talks to the movie metadata API. Raw calls return errors; the
// Fetch* methods in enricher.go turn every failure into an absent Lookup.
// It is safe for concurrent use.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[*response]

	searchCache  *cache.LFU[SearchHit]
	detailsCache *cache.LFU[Details]
}

// NewClient creates a client. The API key must be set by the caller; it is
// read from configuration, never compiled in.
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	return &Client{
		cfg:          cfg,
		http:         &http.Client{Timeout: cfg.Timeout},
		limiter:      limiter,
		cb:           newBreaker(),
		searchCache:  cache.NewLFU[SearchHit](cfg.CacheSize, cfg.CacheTTL),
		detailsCache: cache.NewLFU[Details](cfg.CacheSize, cfg.CacheTTL),
	}
}

// get performs a rate-limited, breaker-protected GET of rawURL.
func (c *Client) get(ctx context.Context, rawURL string, limit int64) (*response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}

	return c.execute(func() (*response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("create request failed: %w", err)
		}
		req.Header.Set("Accept", "application/json, image/*")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrNoResults
		}
		if resp.StatusCode != http.StatusOK {
			body := readBodyForError(resp.Body)
			return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
		if err != nil {
			return nil, fmt.Errorf("read body failed: %w", err)
		}
		if int64(len(body)) > limit {
			return nil, fmt.Errorf("response exceeds %d bytes", limit)
		}
		return &response{body: body, contentType: resp.Header.Get("Content-Type")}, nil
	})
}

// getJSON performs an API GET and decodes the JSON body into T.
func getJSON[T any](ctx context.Context, c *Client, path string, params url.Values) (*T, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.cfg.APIKey)
	reqURL := strings.TrimRight(c.cfg.BaseURL, "/") + path + "?" + params.Encode()

	resp, err := c.get(ctx, reqURL, maxJSONBytes)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(resp.body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return &out, nil
}

const maxJSONBytes = 4 << 20

// Search returns the first search result for title.
func (c *Client) Search(ctx context.Context, title string) (*SearchHit, error) {
	key := strings.ToLower(strings.TrimSpace(title))
	if hit, ok := c.searchCache.Get(key); ok {
		recordCache(true)
		return &hit, nil
	}
	recordCache(false)

	res, err := getJSON[searchResponse](ctx, c, "/search/movie", url.Values{"query": {title}})
	if err != nil {
		return nil, err
	}
	if len(res.Results) == 0 {
		return nil, ErrNoResults
	}

	first := res.Results[0]
	hit := SearchHit{ID: first.ID, Title: first.OriginalTitle}
	if hit.Title == "" {
		hit.Title = first.Title
	}
	if first.PosterPath != nil {
		hit.PosterPath = *first.PosterPath
	}
	c.searchCache.Set(key, hit)
	return &hit, nil
}

// Movie returns the details record for id, without cast.
func (c *Client) Movie(ctx context.Context, id int64) (*movieResponse, error) {
	return getJSON[movieResponse](ctx, c, "/movie/"+strconv.FormatInt(id, 10), nil)
}

// Cast returns up to CastLimit billed cast names for id.
func (c *Client) Cast(ctx context.Context, id int64) ([]string, error) {
	res, err := getJSON[creditsResponse](ctx, c, "/movie/"+strconv.FormatInt(id, 10)+"/credits", nil)
	if err != nil {
		return nil, err
	}
	n := min(len(res.Cast), c.cfg.CastLimit)
	names := make([]string, 0, n)
	for _, member := range res.Cast[:n] {
		names = append(names, member.Name)
	}
	return names, nil
}

// ImageURL builds the poster URL for a poster path.
func (c *Client) ImageURL(posterPath string) string {
	return strings.TrimRight(c.cfg.ImageBaseURL, "/") + "/" + c.cfg.PosterSize + posterPath
}

// Image downloads an image. Non-image content types are rejected.
func (c *Client) Image(ctx context.Context, imageURL string) (*response, error) {
	resp, err := c.get(ctx, imageURL, c.cfg.MaxImageBytes)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(resp.contentType, "image/") {
		return nil, fmt.Errorf("unexpected content type %q", resp.contentType)
	}
	return resp, nil
}
