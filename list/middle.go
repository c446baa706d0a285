package list

// Middle returns the middle node of the list, or nil for an empty list.
// For even lengths it returns the second of the two middle nodes.
//
// Algorithm Outline (slow/fast pointers):
//  1. Advance slow one step and fast two steps per iteration.
//  2. When fast runs off the end, slow stands at the middle.
//
// Time Complexity: O(n), Memory: O(1).
func Middle[T any](head *Node[T]) *Node[T] {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}

	return slow
}

// HasCycle reports whether the list loops back on itself.
//
// Algorithm Outline (Floyd's tortoise and hare):
//  1. Advance slow one step and fast two steps per iteration.
//  2. In a cyclic list the hare laps the tortoise and they meet; in an
//     acyclic list the hare reaches nil.
//
// Time Complexity: O(n), Memory: O(1).
func HasCycle[T any](head *Node[T]) bool {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return true
		}
	}

	return false
}
