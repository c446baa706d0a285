// Package window defines sentinel errors for the window subpackage of
// github.com/katalvlaran/algoprep.
package window

import "errors"

// Sentinel errors for sliding-window operations.
var (
	// ErrEmptyInput indicates an operation requiring elements got none.
	ErrEmptyInput = errors.New("window: input must be non-empty")
	// ErrBadWindow indicates a window size outside [1, len(input)].
	ErrBadWindow = errors.New("window: window size out of range")
)
