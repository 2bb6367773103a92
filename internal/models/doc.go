// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

/*
Package models defines the JSON payloads of the HTTP API.

Every endpoint except /metrics and the poster image wraps its payload in
APIResponse:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "query_time_ms": 3}
	}

Errors use the same envelope with status "error" and a populated Error field
carrying a machine-readable code such as VALIDATION_ERROR or NOT_FOUND.
*/
package models
