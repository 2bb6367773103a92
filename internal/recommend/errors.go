// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("title not found in similarity index")

	// ErrNotInitialized is returned when the engine is queried before Initialize succeeds.
	ErrNotInitialized = errors.New("recommendation engine not initialized")
)

// NotFoundError reports a title absent from the similarity index.
type NotFoundError struct {
	Title string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("title %q not found in similarity index", e.Title)
}

// Is makes errors.Is(err, ErrNotFound) true for any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
