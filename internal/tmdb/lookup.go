// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package tmdb

// Lookup is the result of a metadata call: either a value or an explicit
// absence with a human-readable reason. Collaborator failures are reported
// as absence, never as errors.
type Lookup[T any] struct {
	Value   T
	Present bool
	Reason  string
}

// Found wraps a present value.
func Found[T any](v T) Lookup[T] {
	return Lookup[T]{Value: v, Present: true}
}

// Absent returns an empty lookup carrying reason.
func Absent[T any](reason string) Lookup[T] {
	return Lookup[T]{Reason: reason}
}

// Get returns the value and whether it is present.
func (l Lookup[T]) Get() (T, bool) {
	return l.Value, l.Present
}

// OrElse returns the value, or fallback when absent.
func (l Lookup[T]) OrElse(fallback T) T {
	if l.Present {
		return l.Value
	}
	return fallback
}

// Reasons reported with absent lookups.
const (
	ReasonDisabled    = "metadata enrichment disabled"
	ReasonNoResults   = "no search results"
	ReasonNoPoster    = "no poster available"
	ReasonUnavailable = "metadata service unavailable"
	ReasonFailed      = "metadata request failed"
)
