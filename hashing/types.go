// Package hashing defines sentinel errors for the hashing subpackage
// of github.com/katalvlaran/algoprep.
package hashing

import "errors"

// Sentinel errors for hashing operations.
var (
	// ErrNoPair indicates no two elements sum to the requested target.
	ErrNoPair = errors.New("hashing: no pair sums to target")
	// ErrBadK indicates a top-K request with k < 1 or k exceeding the
	// number of distinct values.
	ErrBadK = errors.New("hashing: k out of range")
)
