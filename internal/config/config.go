// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

// Package config loads Reelmatch configuration from defaults, an optional
// YAML file and environment variables, in increasing order of priority.
package config

import (
	"time"

	"github.com/reelmatch/reelmatch/internal/logging"
	"github.com/reelmatch/reelmatch/internal/recommend"
	"github.com/reelmatch/reelmatch/internal/tmdb"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Data     DataConfig     `koanf:"data"`
	Engine   EngineConfig   `koanf:"engine"`
	TMDB     TMDBConfig     `koanf:"tmdb"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DataConfig locates the movie datasets.
type DataConfig struct {
	MoviesPath  string `koanf:"movies_path"`
	CreditsPath string `koanf:"credits_path"`
}

// EngineConfig tunes the similarity engine.
type EngineConfig struct {
	MinDocFreq   int    `koanf:"min_doc_freq"`
	MaxNGram     int    `koanf:"max_ngram"`
	Kernel       string `koanf:"kernel"`
	DefaultTopN  int    `koanf:"default_top_n"`
	MatchLimit   int    `koanf:"match_limit"`
	BuildWorkers int    `koanf:"build_workers"`
}

// TMDBConfig configures the metadata collaborator.
type TMDBConfig struct {
	Enabled       bool          `koanf:"enabled"`
	APIKey        string        `koanf:"api_key"`
	BaseURL       string        `koanf:"base_url"`
	ImageBaseURL  string        `koanf:"image_base_url"`
	PosterSize    string        `koanf:"poster_size"`
	Timeout       time.Duration `koanf:"timeout"`
	RatePerSecond float64       `koanf:"rate_per_second"`
	Burst         int           `koanf:"burst"`
	CacheSize     int           `koanf:"cache_size"`
	CacheTTL      time.Duration `koanf:"cache_ttl"`
	CastLimit     int           `koanf:"cast_limit"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// RecommendConfig converts the engine section into the engine's own config.
func (c *Config) RecommendConfig() recommend.Config {
	return recommend.Config{
		MinDocFreq:   c.Engine.MinDocFreq,
		MaxNGram:     c.Engine.MaxNGram,
		Kernel:       c.Engine.Kernel,
		DefaultTopN:  c.Engine.DefaultTopN,
		MatchLimit:   c.Engine.MatchLimit,
		BuildWorkers: c.Engine.BuildWorkers,
	}
}

// TMDBClientConfig converts the tmdb section into the client config.
func (c *Config) TMDBClientConfig() tmdb.Config {
	return tmdb.Config{
		APIKey:        c.TMDB.APIKey,
		BaseURL:       c.TMDB.BaseURL,
		ImageBaseURL:  c.TMDB.ImageBaseURL,
		PosterSize:    c.TMDB.PosterSize,
		Timeout:       c.TMDB.Timeout,
		RatePerSecond: c.TMDB.RatePerSecond,
		Burst:         c.TMDB.Burst,
		CacheSize:     c.TMDB.CacheSize,
		CacheTTL:      c.TMDB.CacheTTL,
		CastLimit:     c.TMDB.CastLimit,
	}
}

// LoggingSettings converts the logging section into the logger config.
func (c *Config) LoggingSettings() logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Caller: c.Logging.Caller,
	}
}
