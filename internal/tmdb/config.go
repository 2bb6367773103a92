// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package tmdb

import "time"

// Config configures the metadata client.
type Config struct {
	// APIKey is the v3 API credential. It is never logged.
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	// PosterSize is the image size segment, e.g. "w500".
	PosterSize string

	// Timeout bounds every public operation end to end.
	Timeout time.Duration
	// RatePerSecond and Burst shape outgoing requests; zero disables limiting.
	RatePerSecond float64
	Burst         int

	CacheSize int
	CacheTTL  time.Duration

	// CastLimit is the number of billed cast members returned with details.
	CastLimit int
	// MaxImageBytes caps the size of a downloaded poster.
	MaxImageBytes int64
}

// DefaultConfig returns the default client configuration without a key.
func DefaultConfig() Config {
	return Config{
		BaseURL:       "https://api.themoviedb.org/3",
		ImageBaseURL:  "https://image.tmdb.org/t/p",
		PosterSize:    "w500",
		Timeout:       5 * time.Second,
		RatePerSecond: 20,
		Burst:         10,
		CacheSize:     2048,
		CacheTTL:      time.Hour,
		CastLimit:     5,
		MaxImageBytes: 10 << 20,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.ImageBaseURL == "" {
		c.ImageBaseURL = def.ImageBaseURL
	}
	if c.PosterSize == "" {
		c.PosterSize = def.PosterSize
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	if c.CacheSize <= 0 {
		c.CacheSize = def.CacheSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = def.CacheTTL
	}
	if c.CastLimit <= 0 {
		c.CastLimit = def.CastLimit
	}
	if c.MaxImageBytes <= 0 {
		c.MaxImageBytes = def.MaxImageBytes
	}
	return c
}
