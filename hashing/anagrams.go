package hashing

import (
	"slices"
	"strings"
)

// IsAnagram reports whether a and b contain exactly the same runes with
// the same multiplicities.
//
// Time Complexity: O(n), Memory: O(Σ) for the alphabet seen.
func IsAnagram(a, b string) bool {
	counts := make(map[rune]int)
	for _, r := range a {
		counts[r]++
	}
	for _, r := range b {
		counts[r]--
		if counts[r] < 0 {
			return false // b has a rune a lacks
		}
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}

	return true
}

// GroupAnagrams partitions words into groups of mutual anagrams.
// Groups appear in order of their first member; within a group, words
// keep their input order. Duplicated words stay duplicated.
//
// Algorithm Outline:
//  1. Compute each word's signature: its runes sorted.
//  2. Bucket words by signature in a map.
//  3. Emit buckets in first-seen order.
//
// Time Complexity: O(Σ words · w log w), Memory: O(total input).
func GroupAnagrams(words []string) [][]string {
	buckets := make(map[string][]string, len(words))
	order := make([]string, 0, len(words)) // signatures in first-seen order
	for _, w := range words {
		sig := anagramSignature(w)
		if _, ok := buckets[sig]; !ok {
			order = append(order, sig)
		}
		buckets[sig] = append(buckets[sig], w)
	}

	out := make([][]string, 0, len(order))
	for _, sig := range order {
		out = append(out, buckets[sig])
	}

	return out
}

// anagramSignature returns w's runes sorted, a canonical anagram key.
func anagramSignature(w string) string {
	runes := []rune(w)
	slices.Sort(runes)
	var sb strings.Builder
	sb.Grow(len(w))
	for _, r := range runes {
		sb.WriteRune(r)
	}

	return sb.String()
}
