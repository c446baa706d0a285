package hashing

// LongestConsecutive returns the length of the longest run of
// consecutive integers present in nums, regardless of their order.
// Duplicates count once. Empty input yields 0.
//
// Algorithm Outline:
//  1. Load all values into a set.
//  2. Only a value whose predecessor is absent can start a run; walk
//     forward from each such start counting members.
//  3. Every value is visited at most twice, keeping the scan linear.
//
// Time Complexity: O(n) expected, Memory: O(n).
func LongestConsecutive(nums []int) int {
	members := make(map[int]struct{}, len(nums))
	for _, v := range nums {
		members[v] = struct{}{}
	}

	best := 0
	for v := range members {
		if _, ok := members[v-1]; ok {
			continue // not a run start
		}
		length := 1
		for {
			if _, ok := members[v+length]; !ok {
				break
			}
			length++
		}
		if length > best {
			best = length
		}
	}

	return best
}
