package twopointers

import "slices"

// ThreeSum returns every unique triple of values from nums summing to
// zero, each triple in ascending order, triples ordered by their anchor.
// The input is not mutated; the scan runs over a sorted copy.
//
// Algorithm Outline:
//  1. Sort a copy of nums ascending.
//  2. Fix each index as the anchor, skipping repeated anchor values.
//  3. Run the PairSum inward scan on the suffix for -anchor, skipping
//     repeated pair values so each triple appears once.
//
// Time Complexity: O(n²), Memory: O(n) for the sorted copy.
func ThreeSum(nums []int) [][3]int {
	sorted := slices.Clone(nums)
	slices.Sort(sorted)

	var out [][3]int
	for a := 0; a < len(sorted)-2; a++ {
		if sorted[a] > 0 {
			break // anchors past zero cannot open a zero-sum triple
		}
		if a > 0 && sorted[a] == sorted[a-1] {
			continue // repeated anchor value
		}
		left, right := a+1, len(sorted)-1
		for left < right {
			sum := sorted[a] + sorted[left] + sorted[right]
			switch {
			case sum < 0:
				left++
			case sum > 0:
				right--
			default:
				out = append(out, [3]int{sorted[a], sorted[left], sorted[right]})
				left++
				right--
				for left < right && sorted[left] == sorted[left-1] {
					left++ // repeated middle value
				}
				for left < right && sorted[right] == sorted[right+1] {
					right-- // repeated high value
				}
			}
		}
	}

	return out
}
