package hashing

// TwoSum finds indices i < j with nums[i]+nums[j] == target in an
// unsorted slice. Returns ErrNoPair when no such pair exists.
//
// Algorithm Outline (complement map, single pass):
//  1. For each index j, look up target-nums[j] among the indices of
//     values already seen.
//  2. A hit yields the pair; otherwise record nums[j] → j and continue.
//
// An element never pairs with itself, but equal values at distinct
// indices do pair.
//
// Time Complexity: O(n) expected, Memory: O(n).
func TwoSum(nums []int, target int) (int, int, error) {
	seen := make(map[int]int, len(nums)) // value → earliest index
	for j, v := range nums {
		if i, ok := seen[target-v]; ok {
			return i, j, nil
		}
		if _, ok := seen[v]; !ok {
			seen[v] = j
		}
	}

	return 0, 0, ErrNoPair
}
