package window

// MaxSumFixed returns the largest sum over any window of exactly k
// consecutive elements. Returns ErrBadWindow when k < 1 or k > len(nums).
//
// Algorithm Outline:
//  1. Sum the first k elements.
//  2. Slide: add the entering element, subtract the leaving one.
//
// Time Complexity: O(n), Memory: O(1).
func MaxSumFixed(nums []int, k int) (int, error) {
	if k < 1 || k > len(nums) {
		return 0, ErrBadWindow
	}
	sum := 0
	for _, v := range nums[:k] {
		sum += v
	}
	best := sum
	for i := k; i < len(nums); i++ {
		sum += nums[i] - nums[i-k]
		if sum > best {
			best = sum
		}
	}

	return best, nil
}

// MaxAverageFixed returns the largest average over any window of exactly
// k consecutive elements. Returns ErrBadWindow when k is out of range.
//
// Time Complexity: O(n), Memory: O(1).
func MaxAverageFixed(nums []int, k int) (float64, error) {
	sum, err := MaxSumFixed(nums, k)
	if err != nil {
		return 0, err
	}

	return float64(sum) / float64(k), nil
}
