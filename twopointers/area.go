package twopointers

// MaxArea returns the largest rectangle of water holdable between two
// vertical lines of the given heights, where the width is the index
// distance and the depth is the shorter line.
//
// Algorithm Outline:
//  1. Start with the widest container, one pointer at each end.
//  2. Record its area; then move the pointer at the shorter line inward,
//     since keeping it can never beat the current area at lesser width.
//  3. Repeat until the pointers meet.
//
// Time Complexity: O(n), Memory: O(1).
func MaxArea(heights []int) int {
	best := 0
	left, right := 0, len(heights)-1
	for left < right {
		depth := heights[left]
		if heights[right] < depth {
			depth = heights[right]
		}
		if area := depth * (right - left); area > best {
			best = area
		}
		if heights[left] < heights[right] {
			left++
		} else {
			right--
		}
	}

	return best
}

// TrapRain returns the total volume of rain water trapped between bars
// of the given heights.
//
// Algorithm Outline (two pointers, running maxima):
//  1. Keep the highest bar seen from each side.
//  2. The lower side bounds the water level over its pointer; the cell
//     holds max-seen-on-that-side minus its own height.
//  3. Advance the pointer on the side with the lower running maximum.
//
// Time Complexity: O(n), Memory: O(1).
func TrapRain(heights []int) int {
	if len(heights) < 3 {
		return 0 // too narrow to trap anything
	}
	left, right := 0, len(heights)-1
	leftMax, rightMax := heights[left], heights[right]
	total := 0
	for left < right {
		if leftMax <= rightMax {
			left++
			if heights[left] > leftMax {
				leftMax = heights[left]
			} else {
				total += leftMax - heights[left]
			}
		} else {
			right--
			if heights[right] > rightMax {
				rightMax = heights[right]
			} else {
				total += rightMax - heights[right]
			}
		}
	}

	return total
}
