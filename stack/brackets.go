package stack

// ValidBrackets reports whether every bracket in s is closed by the
// matching bracket in the correct order.
//
// By default the pairs are ()[]{}, and non-bracket runes are skipped;
// both can be changed via WithPairs and WithStrict.
//
// Algorithm Outline:
//  1. Scan runes left to right.
//  2. Push each opener on a stack of expected closers.
//  3. On a closer, it must equal the stack top; pop it.
//  4. The string is valid iff the stack ends empty.
//
// Time Complexity: O(n), Memory: O(n).
func ValidBrackets(s string, opts ...Option) (bool, error) {
	o := DefaultBracketOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return false, o.err
	}

	// closers[r] is true for every rune that closes some pair
	closers := make(map[rune]bool, len(o.Pairs))
	for _, closer := range o.Pairs {
		closers[closer] = true
	}

	expected := New[rune](len(s))
	for _, r := range s {
		if closer, ok := o.Pairs[r]; ok {
			expected.Push(closer)

			continue
		}
		if closers[r] {
			top, err := expected.Pop()
			if err != nil || top != r {
				return false, nil // unmatched closer
			}

			continue
		}
		if o.Strict {
			return false, nil // foreign rune in strict mode
		}
	}

	return expected.Empty(), nil
}
