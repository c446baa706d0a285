package stack

// NextGreater returns, for each index i, the value of the first element to
// the right of nums[i] that is strictly greater, or -1 when none exists.
//
// Algorithm Outline (decreasing monotonic stack):
//  1. Scan left to right, keeping a stack of indices whose answer is
//     still unknown; values at stacked indices strictly decrease.
//  2. When nums[i] exceeds the value at the stack top, nums[i] is the
//     answer for that index; pop and repeat.
//  3. Indices still stacked at the end have no greater element.
//
// Each index is pushed and popped at most once.
// Time Complexity: O(n) amortized, Memory: O(n).
func NextGreater(nums []int) []int {
	out := make([]int, len(nums))
	pending := make([]int, 0, len(nums)) // indices with unresolved answers
	for i, v := range nums {
		for len(pending) > 0 && nums[pending[len(pending)-1]] < v {
			out[pending[len(pending)-1]] = v
			pending = pending[:len(pending)-1]
		}
		pending = append(pending, i)
	}
	for _, i := range pending {
		out[i] = -1 // no greater element to the right
	}

	return out
}

// PreviousSmaller returns, for each index i, the value of the nearest
// element to the left of nums[i] that is strictly smaller, or -1 when
// none exists.
//
// Mirror of NextGreater: the stack keeps indices of a strictly
// increasing run seen so far, so the top after popping ≥-values is the
// closest smaller element.
//
// Time Complexity: O(n) amortized, Memory: O(n).
func PreviousSmaller(nums []int) []int {
	out := make([]int, len(nums))
	rising := make([]int, 0, len(nums)) // indices of an increasing run
	for i, v := range nums {
		for len(rising) > 0 && nums[rising[len(rising)-1]] >= v {
			rising = rising[:len(rising)-1]
		}
		if len(rising) == 0 {
			out[i] = -1
		} else {
			out[i] = nums[rising[len(rising)-1]]
		}
		rising = append(rising, i)
	}

	return out
}

// DailyTemperatures returns, for each day i, the number of days until a
// strictly warmer temperature, or 0 when no warmer day follows.
//
// Same decreasing-stack walk as NextGreater, but the answer is the index
// distance rather than the value.
//
// Time Complexity: O(n) amortized, Memory: O(n).
func DailyTemperatures(temps []int) []int {
	out := make([]int, len(temps))
	pending := make([]int, 0, len(temps))
	for i, t := range temps {
		for len(pending) > 0 && temps[pending[len(pending)-1]] < t {
			j := pending[len(pending)-1]
			out[j] = i - j
			pending = pending[:len(pending)-1]
		}
		pending = append(pending, i)
	}

	return out
}
