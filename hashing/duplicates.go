package hashing

// HasDuplicate reports whether any value appears more than once in items.
// The scan exits on the first repeat rather than hashing the whole input.
//
// Time Complexity: O(n) expected, Memory: O(n).
func HasDuplicate[T comparable](items []T) bool {
	seen := make(map[T]struct{}, len(items))
	for _, v := range items {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}

	return false
}
