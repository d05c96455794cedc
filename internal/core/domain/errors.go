package domain

import (
	"errors"
	"fmt"
)

// ErrConfig is the parent of every configuration error.
// Use errors.Is(err, ErrConfig) to classify invocation mistakes.
var ErrConfig = errors.New("invalid configuration")

// Configuration errors.
var (
	// ErrMissingQuery indicates no query argument was supplied.
	ErrMissingQuery = fmt.Errorf("%w: didn't get a query string", ErrConfig)

	// ErrMissingPath indicates no file path argument was supplied.
	ErrMissingPath = fmt.Errorf("%w: didn't get a file path", ErrConfig)
)

// ErrInvalidOutputFormat indicates an unknown output format name.
var ErrInvalidOutputFormat = errors.New("invalid output format")

// IOError reports a failure to read the corpus or write results.
type IOError struct {
	// Op is the failed operation, "read" or "write".
	Op string

	// Path is the corpus file, empty for output failures.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOError reports whether err is or wraps an *IOError.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
