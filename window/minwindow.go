package window

// MinWindow returns the shortest substring of s containing every rune of
// t with at least t's multiplicity, or "" when no such window exists.
// An empty t yields "".
//
// Algorithm Outline (variable window over rune counts):
//  1. Count the required runes of t.
//  2. Expand the right edge, tracking how many requirements are fully
//     met.
//  3. Whenever all are met, contract the left edge as far as possible,
//     recording the tightest window.
//
// Time Complexity: O(n) amortized, Memory: O(Σ) for the alphabet of t.
func MinWindow(s, t string) string {
	if len(t) == 0 || len(s) < len(t) {
		return ""
	}
	need := make(map[rune]int)
	for _, r := range t {
		need[r]++
	}

	runes := []rune(s)
	have := make(map[rune]int, len(need))
	satisfied := 0 // distinct runes whose requirement is fully met
	bestLeft, bestLen := 0, -1
	left := 0
	for right, r := range runes {
		if _, wanted := need[r]; wanted {
			have[r]++
			if have[r] == need[r] {
				satisfied++
			}
		}
		for satisfied == len(need) {
			if bestLen == -1 || right-left+1 < bestLen {
				bestLeft, bestLen = left, right-left+1
			}
			out := runes[left]
			if _, wanted := need[out]; wanted {
				if have[out] == need[out] {
					satisfied--
				}
				have[out]--
			}
			left++
		}
	}
	if bestLen == -1 {
		return ""
	}

	return string(runes[bestLeft : bestLeft+bestLen])
}
