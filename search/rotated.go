package search

// Rotated returns the index of target in a slice that was sorted
// ascending with distinct values, then rotated at an unknown pivot.
// Returns -1 when absent.
//
// Algorithm Outline:
//  1. At every probe, at least one side of the middle is properly
//     sorted; the first elements tell which.
//  2. If target lies inside the sorted side's value range, search
//     there; otherwise search the other side.
//
// Time Complexity: O(log n), Memory: O(1).
func Rotated(nums []int, target int) int {
	front, back := 0, len(nums)-1
	for front <= back {
		mid := front + (back-front)/2
		if nums[mid] == target {
			return mid
		}
		if nums[front] <= nums[mid] { // left side sorted
			if nums[front] <= target && target < nums[mid] {
				back = mid - 1
			} else {
				front = mid + 1
			}
		} else { // right side sorted
			if nums[mid] < target && target <= nums[back] {
				front = mid + 1
			} else {
				back = mid - 1
			}
		}
	}

	return -1
}
