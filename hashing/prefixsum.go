package hashing

// CountSubarraysWithSum returns how many contiguous subarrays of nums
// sum exactly to target. Works with negative values, where a sliding
// window would not.
//
// Algorithm Outline (prefix-sum counting):
//  1. Maintain the running prefix sum and a map counting how often each
//     prefix value has occurred.
//  2. A subarray ending at the current index sums to target exactly
//     when an earlier prefix equals prefix-target; add its count.
//  3. Seed the map with prefix 0 seen once, covering subarrays that
//     start at index 0.
//
// Time Complexity: O(n) expected, Memory: O(n).
func CountSubarraysWithSum(nums []int, target int) int {
	seen := map[int]int{0: 1} // prefix value → occurrences
	prefix, total := 0, 0
	for _, v := range nums {
		prefix += v
		total += seen[prefix-target]
		seen[prefix]++
	}

	return total
}
