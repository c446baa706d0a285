// Package list implements a generic singly linked list and the classic
// pointer manipulations over it: reversal, middle finding, cycle
// detection and sorted merge.
//
// What:
//
//   - Node[T] — a value and a next pointer; a list is a *Node[T] head,
//     nil meaning empty.
//   - FromSlice / ToSlice / Len — conversion and measurement helpers.
//   - Reverse — iterative in-place reversal, returns the new head.
//   - Middle — the middle node via slow/fast pointers (second of two
//     middles for even lengths).
//   - HasCycle — Floyd's tortoise-and-hare cycle detection.
//   - Merge — merge two ascending lists into one, relinking nodes.
//
// Why:
//
//   - Pointer rewiring without auxiliary storage is the heart of every
//     linked-list exercise; these are the canonical forms.
//
// Complexity:
//
//   - Reverse, Middle, HasCycle, Merge, Len, ToSlice: O(n), Memory: O(1)
//     beyond the nodes themselves.
//   - FromSlice: O(n), Memory: O(n) for the new nodes.
//
// Reverse and Merge relink the nodes they are given; the old head
// pointers are stale afterwards. ToSlice and Len must not be called on
// a cyclic list.
package list
