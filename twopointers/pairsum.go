package twopointers

// PairSum finds two indices i < j in the ascending-sorted slice nums with
// nums[i]+nums[j] == target. Indices are 0-based. Returns ErrNoPair when
// no such pair exists. Sortedness is a precondition and is not checked.
//
// Algorithm Outline:
//  1. Place one pointer at each end of the slice.
//  2. If the sum is too small, only advancing the left pointer can grow
//     it; if too large, only retreating the right pointer can shrink it.
//  3. Stop when the pointers meet.
//
// Time Complexity: O(n), Memory: O(1).
func PairSum(nums []int, target int) (int, int, error) {
	left, right := 0, len(nums)-1
	for left < right {
		sum := nums[left] + nums[right]
		switch {
		case sum == target:
			return left, right, nil
		case sum < target:
			left++
		default:
			right--
		}
	}

	return 0, 0, ErrNoPair
}
