// Package twopointers defines sentinel errors for the twopointers
// subpackage of github.com/katalvlaran/algoprep.
package twopointers

import "errors"

// Sentinel errors for two-pointer operations.
var (
	// ErrNoPair indicates no two elements sum to the requested target.
	ErrNoPair = errors.New("twopointers: no pair sums to target")
)
