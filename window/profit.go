package window

// MaxProfit returns the best profit from buying on one day and selling
// on a later day of the price series, or 0 when no transaction is ever
// profitable. Returns ErrEmptyInput for an empty series.
//
// Algorithm Outline:
//  1. Track the lowest price seen so far (the best buy).
//  2. At each day, selling against that low is the best sale ending
//     here; keep the running maximum.
//
// Time Complexity: O(n), Memory: O(1).
func MaxProfit(prices []int) (int, error) {
	if len(prices) == 0 {
		return 0, ErrEmptyInput
	}
	lowest := prices[0]
	best := 0
	for _, p := range prices[1:] {
		if p < lowest {
			lowest = p
		} else if profit := p - lowest; profit > best {
			best = profit
		}
	}

	return best, nil
}
