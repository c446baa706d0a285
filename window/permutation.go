package window

// ContainsPermutation reports whether s contains a substring that is a
// permutation of pattern. An empty pattern is contained in any string.
//
// Algorithm Outline (fixed window over rune counts):
//  1. Count pattern's runes and the first len(pattern) runes of s,
//     tracking how many distinct runes already match exactly.
//  2. Slide the window one rune at a time, adjusting the two affected
//     counts and the match tally.
//  3. A full tally at any position is a permutation hit.
//
// Time Complexity: O(n), Memory: O(Σ) for the alphabets seen.
func ContainsPermutation(s, pattern string) bool {
	if len(pattern) == 0 {
		return true
	}
	window := []rune(s)
	want := []rune(pattern)
	if len(window) < len(want) {
		return false
	}

	need := make(map[rune]int, len(want))
	for _, r := range want {
		need[r]++
	}
	have := make(map[rune]int, len(need))
	matches := 0 // distinct runes with have == need
	add := func(r rune) {
		if _, wanted := need[r]; !wanted {
			return
		}
		if have[r] == need[r] {
			matches--
		}
		have[r]++
		if have[r] == need[r] {
			matches++
		}
	}
	remove := func(r rune) {
		if _, wanted := need[r]; !wanted {
			return
		}
		if have[r] == need[r] {
			matches--
		}
		have[r]--
		if have[r] == need[r] {
			matches++
		}
	}

	k := len(want)
	for i, r := range window {
		add(r)
		if i >= k {
			remove(window[i-k])
		}
		if i >= k-1 && matches == len(need) {
			return true
		}
	}

	return false
}
