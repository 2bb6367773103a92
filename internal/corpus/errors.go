// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package corpus

import "errors"

// ErrDataLoad is the sentinel matched by every DataLoadError.
var ErrDataLoad = errors.New("corpus data load failed")

// DataLoadError reports that a source dataset could not be read, is malformed,
// or that joining the datasets produced no records. It is fatal at startup.
type DataLoadError struct {
	Source string
	Reason string
	Err    error
}

// NewDataLoadError creates a DataLoadError for the named source.
func NewDataLoadError(source, reason string, err error) *DataLoadError {
	return &DataLoadError{Source: source, Reason: reason, Err: err}
}

// Error implements the error interface.
func (e *DataLoadError) Error() string {
	msg := "load " + e.Source + ": " + e.Reason
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error unwrapping.
func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDataLoad) true for any DataLoadError.
func (e *DataLoadError) Is(target error) bool {
	return target == ErrDataLoad
}
