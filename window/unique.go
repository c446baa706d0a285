package window

// LongestUnique returns the length of the longest substring of s with no
// repeated rune. The empty string yields 0.
//
// Algorithm Outline (variable window):
//  1. Expand the right edge rune by rune, recording each rune's latest
//     index.
//  2. On a repeat inside the window, jump the left edge past the
//     previous occurrence.
//  3. The answer is the widest window ever seen.
//
// Time Complexity: O(n), Memory: O(Σ) for the alphabet seen.
func LongestUnique(s string) int {
	last := make(map[rune]int) // rune → latest index seen
	best, left, i := 0, 0, 0
	for _, r := range s {
		if prev, ok := last[r]; ok && prev >= left {
			left = prev + 1 // shrink past the duplicate
		}
		last[r] = i
		if width := i - left + 1; width > best {
			best = width
		}
		i++
	}

	return best
}
