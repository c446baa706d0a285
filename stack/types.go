// Package stack defines the container type, options, and sentinel errors
// for the stack subpackage of github.com/katalvlaran/algoprep.
package stack

import (
	"errors"
	"fmt"
)

// Sentinel errors for stack operations.
var (
	// ErrEmptyStack indicates Pop or Peek was called on an empty stack.
	ErrEmptyStack = errors.New("stack: empty stack")
	// ErrBadToken indicates EvalRPN met a token that is neither an integer nor an operator.
	ErrBadToken = errors.New("stack: bad RPN token")
	// ErrShortExpression indicates an RPN expression with missing or surplus operands.
	ErrShortExpression = errors.New("stack: malformed RPN expression")
	// ErrDivisionByZero indicates an RPN division or modulo by zero.
	ErrDivisionByZero = errors.New("stack: division by zero")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("stack: invalid option supplied")
)

// Option configures bracket validation via functional arguments.
// An invalid Option (e.g. an empty pair set) is recorded internally and
// surfaced as ErrOptionViolation when ValidBrackets is invoked.
type Option func(*BracketOptions)

// BracketOptions holds parameters for ValidBrackets.
type BracketOptions struct {
	// Pairs maps each opening rune to its required closing rune.
	Pairs map[rune]rune

	// Strict, when true, makes any rune outside the pair set an
	// immediate mismatch instead of being skipped.
	Strict bool

	// internal error recorded during option parsing
	err error
}

// DefaultBracketOptions returns a BracketOptions with the conventional
// three pairs ()[]{} and Strict=false (non-bracket runes are skipped).
func DefaultBracketOptions() BracketOptions {
	return BracketOptions{
		Pairs: map[rune]rune{
			'(': ')',
			'[': ']',
			'{': '}',
		},
		Strict: false,
		err:    nil,
	}
}

// WithPairs replaces the bracket pair set. The map must be non-empty and
// no rune may act as both an opener and a closer.
func WithPairs(pairs map[rune]rune) Option {
	return func(o *BracketOptions) {
		if len(pairs) == 0 {
			o.err = fmt.Errorf("%w: pair set must be non-empty", ErrOptionViolation)

			return
		}
		closers := make(map[rune]bool, len(pairs))
		for _, closer := range pairs {
			closers[closer] = true
		}
		for open := range pairs {
			if closers[open] {
				o.err = fmt.Errorf("%w: rune %q is both opener and closer", ErrOptionViolation, open)

				return
			}
		}
		o.Pairs = pairs
	}
}

// WithStrict rejects runes outside the pair set instead of skipping them.
func WithStrict() Option {
	return func(o *BracketOptions) {
		o.Strict = true
	}
}
