// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

/*
Package main is the entry point for the Reelmatch server application.

Reelmatch recommends movies whose plot synopses read like the one a user asks
about. A free-text title is resolved against the catalog with fuzzy matching,
and the closest synopses are ranked from a precomputed TF-IDF similarity
matrix. Posters and details can optionally be fetched from TMDB.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("reelmatch")
	├── EngineSupervisor ("engine-layer")
	│   └── Engine build (runs once, terminates the tree on bad datasets)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Engine: empty until the engine service has loaded the datasets
 4. Enrichment: TMDB client, or a disabled collaborator that answers "absent"
 5. HTTP Server: Chi router with middleware stack
 6. Supervisor Tree: Suture v4 process supervision

The HTTP server starts immediately. Until the engine is built, readiness and
query endpoints answer 503.

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_PORT=8080
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Datasets
	MOVIES_PATH=data/tmdb_5000_movies.csv
	CREDITS_PATH=data/tmdb_5000_credits.csv

	# Engine
	ENGINE_KERNEL=sigmoid        # sigmoid or cosine
	ENGINE_MIN_DOC_FREQ=3

	# Enrichment (optional)
	TMDB_ENABLED=false
	TMDB_API_KEY=<api-key>

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (SHUTDOWN_TIMEOUT)
 3. Reports any services that failed to stop

# Usage Examples

	export TMDB_ENABLED=true TMDB_API_KEY=xxx
	go run ./cmd/server

	curl 'localhost:8080/api/v1/recommendations?title=avatr&k=5'

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/recommend: Similarity engine and ranking
*/
package main
