package list

import "cmp"

// Merge merges two ascending-sorted lists into one ascending list,
// relinking the existing nodes, and returns the merged head. Either
// input may be nil. Equal values keep a's node first, so the merge is
// stable.
//
// Algorithm Outline:
//  1. Grow the result from a sentinel node's tail.
//  2. At each step splice in the smaller head of the two remainders.
//  3. Append whichever remainder survives.
//
// Time Complexity: O(n+m), Memory: O(1).
func Merge[T cmp.Ordered](a, b *Node[T]) *Node[T] {
	var sentinel Node[T]
	tail := &sentinel
	for a != nil && b != nil {
		if b.Val < a.Val {
			tail.Next = b
			b = b.Next
		} else {
			tail.Next = a
			a = a.Next
		}
		tail = tail.Next
	}
	if a != nil {
		tail.Next = a
	} else {
		tail.Next = b
	}

	return sentinel.Next
}
