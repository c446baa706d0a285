package list

// Node is one element of a singly linked list. A list is referenced by
// its head pointer; nil is the empty list.
type Node[T any] struct {
	Val  T
	Next *Node[T]
}

// FromSlice builds a list with the elements of s in order and returns
// its head, nil for an empty slice.
// Time Complexity: O(n), Memory: O(n).
func FromSlice[T any](s []T) *Node[T] {
	var head, tail *Node[T]
	for _, v := range s {
		n := &Node[T]{Val: v}
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}

	return head
}

// ToSlice collects the list values in order. Must not be called on a
// cyclic list.
// Time Complexity: O(n), Memory: O(n).
func ToSlice[T any](head *Node[T]) []T {
	var out []T
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Val)
	}

	return out
}

// Len returns the number of nodes. Must not be called on a cyclic list.
// Time Complexity: O(n).
func Len[T any](head *Node[T]) int {
	count := 0
	for n := head; n != nil; n = n.Next {
		count++
	}

	return count
}
