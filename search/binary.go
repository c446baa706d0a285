package search

// Binary returns the index of target in the ascending-sorted slice nums,
// or -1 when absent. With duplicates, any matching index may be
// returned.
//
// Algorithm Outline (inclusive bounds):
//  1. Keep front and back indices bounding the live range.
//  2. Probe the middle; equal hits win, otherwise discard the half that
//     cannot contain target — excluding the probed index itself.
//  3. The range is empty once front passes back.
//
// Time Complexity: O(log n), Memory: O(1).
func Binary(nums []int, target int) int {
	front, back := 0, len(nums)-1
	for front <= back {
		mid := front + (back-front)/2 // no overflow on huge slices
		switch {
		case nums[mid] == target:
			return mid
		case nums[mid] < target:
			front = mid + 1
		default:
			back = mid - 1
		}
	}

	return -1
}

// LowerBound returns the smallest index i with nums[i] >= target, or
// len(nums) when every element is smaller. nums must be ascending.
//
// Time Complexity: O(log n), Memory: O(1).
func LowerBound(nums []int, target int) int {
	lo, hi := 0, len(nums) // half-open candidate range
	for lo < hi {
		mid := lo + (hi-lo)/2
		if nums[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// UpperBound returns the smallest index i with nums[i] > target, or
// len(nums) when no element is greater. nums must be ascending.
//
// Time Complexity: O(log n), Memory: O(1).
func UpperBound(nums []int, target int) int {
	lo, hi := 0, len(nums)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if nums[mid] <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}
