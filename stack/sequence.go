package stack

// ValidSequence reports whether popped could be the pop order of a stack
// fed the elements of pushed, in order. Elements are assumed distinct.
//
// Algorithm Outline (simulation):
//  1. Push each element of pushed onto an auxiliary stack.
//  2. After every push, greedily pop while the stack top equals the next
//     element of popped.
//  3. The orders are compatible iff the auxiliary stack drains completely.
//
// Time Complexity: O(n), Memory: O(n).
func ValidSequence(pushed, popped []int) bool {
	if len(pushed) != len(popped) {
		return false
	}
	aux := New[int](len(pushed))
	next := 0 // position of the next expected pop in popped
	for _, v := range pushed {
		aux.Push(v)
		for !aux.Empty() {
			top, _ := aux.Peek()
			if top != popped[next] {
				break
			}
			_, _ = aux.Pop()
			next++
		}
	}

	return aux.Empty()
}
