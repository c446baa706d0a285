package twopointers

// ReverseInPlace reverses s in place by swapping symmetric index pairs.
// Time Complexity: O(n), Memory: O(1).
func ReverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
