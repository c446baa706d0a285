package window

// MaxSliding returns the maximum of every window of exactly k
// consecutive elements, in window order. Returns ErrBadWindow when
// k < 1 or k > len(nums).
//
// Algorithm Outline (monotonic index deque):
//  1. Keep a deque of indices whose values strictly decrease front to
//     back; the front is always the current window's maximum.
//  2. On each new element, drop smaller-or-equal values from the back
//     (they can never be a maximum again), then drop the front once it
//     slides out of range.
//
// Each index enters and leaves the deque at most once.
// Time Complexity: O(n) amortized, Memory: O(k).
func MaxSliding(nums []int, k int) ([]int, error) {
	if k < 1 || k > len(nums) {
		return nil, ErrBadWindow
	}
	out := make([]int, 0, len(nums)-k+1)
	deque := make([]int, 0, k) // indices, values decreasing front→back
	for i, v := range nums {
		for len(deque) > 0 && nums[deque[len(deque)-1]] <= v {
			deque = deque[:len(deque)-1] // dominated by the newcomer
		}
		deque = append(deque, i)
		if deque[0] <= i-k {
			deque = deque[1:] // front slid out of the window
		}
		if i >= k-1 {
			out = append(out, nums[deque[0]])
		}
	}

	return out, nil
}
