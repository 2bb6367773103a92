// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

/*
Package api exposes the recommendation engine and the metadata collaborator
over HTTP using the chi router.

Endpoints:

	GET /api/v1/health/live                 process liveness
	GET /api/v1/health/ready                200 once the engine is initialized
	GET /api/v1/search?q=&limit=            fuzzy title matches
	GET /api/v1/recommendations?title=&k=&enrich=
	GET /api/v1/movies/{title}              corpus record
	GET /api/v1/movies/{title}/details      collaborator details or {"available": false}
	GET /api/v1/movies/{title}/poster       poster image bytes
	GET /api/v1/engine/status               build summary
	GET /metrics                            Prometheus

JSON endpoints answer with models.APIResponse. A query that resolves to no
title is not an error: it yields 200 with an empty recommendation list and
the message "no recommendations".

Collaborator failures never fail a request. Enrichment fields are omitted
and the details endpoint reports available=false with a reason.
*/
package api
