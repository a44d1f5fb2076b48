package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when an expected result file is absent.
	ErrFileNotFound = errors.New("result file not found")
	// ErrMalformedInput is returned for short files, short rows, a missing header
	// label, or a field that must be numeric but does not parse.
	ErrMalformedInput = errors.New("malformed result file")
	// ErrInsufficientSamples is returned when fewer than 2 values are available
	// for a variance.
	ErrInsufficientSamples = errors.New("insufficient samples for variance")
)

// FileError ties a failure to the result file that caused it.
type FileError struct {
	Index int
	Path  string
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("result file %d (%s): %v", e.Index, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
