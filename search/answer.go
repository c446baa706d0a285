package search

// MinEatingSpeed returns the smallest integer rate (units per hour) at
// which all piles can be finished within hours, eating from at most one
// pile per hour. Returns ErrEmptyInput for no piles and ErrInfeasible
// when hours < len(piles) (each pile needs at least one hour).
//
// Algorithm Outline (binary search on the answer):
//  1. Feasibility is monotone in the rate: anything a slow rate
//     finishes, a faster rate finishes too.
//  2. Binary-search rates in [1, max(piles)] for the first feasible one
//     — a LowerBound over the answer space instead of the data.
//
// Time Complexity: O(n log max(piles)), Memory: O(1).
func MinEatingSpeed(piles []int, hours int) (int, error) {
	if len(piles) == 0 {
		return 0, ErrEmptyInput
	}
	if hours < len(piles) {
		return 0, ErrInfeasible
	}

	maxPile := piles[0]
	for _, p := range piles[1:] {
		if p > maxPile {
			maxPile = p
		}
	}

	// hoursAt reports the total hours needed at the given rate.
	hoursAt := func(rate int) int {
		total := 0
		for _, p := range piles {
			total += (p + rate - 1) / rate // ceil division
		}

		return total
	}

	lo, hi := 1, maxPile
	for lo < hi {
		mid := lo + (hi-lo)/2
		if hoursAt(mid) <= hours {
			hi = mid // feasible, try slower
		} else {
			lo = mid + 1
		}
	}

	return lo, nil
}
