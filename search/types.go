// Package search defines sentinel errors for the search subpackage of
// github.com/katalvlaran/algoprep.
package search

import "errors"

// Sentinel errors for answer-space searches.
var (
	// ErrEmptyInput indicates an operation requiring elements got none.
	ErrEmptyInput = errors.New("search: input must be non-empty")
	// ErrInfeasible indicates no rate can meet the given hour budget.
	ErrInfeasible = errors.New("search: no feasible answer under the given budget")
)
