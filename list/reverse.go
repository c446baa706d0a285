package list

// Reverse reverses the list in place and returns the new head. The old
// head becomes the tail; nil and single-node lists pass through.
//
// Algorithm Outline:
//  1. Walk the list holding the already-reversed prefix (prev) and the
//     unvisited suffix (curr).
//  2. At each node, save its successor, point it at prev, advance both.
//
// Time Complexity: O(n), Memory: O(1).
func Reverse[T any](head *Node[T]) *Node[T] {
	var prev *Node[T]
	curr := head
	for curr != nil {
		next := curr.Next
		curr.Next = prev
		prev = curr
		curr = next
	}

	return prev
}
