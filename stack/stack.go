package stack

// Stack is a generic slice-backed LIFO container.
// The zero value is an empty stack ready for use.
type Stack[T any] struct {
	data []T
}

// New returns an empty stack with capacity for n elements.
func New[T any](n int) *Stack[T] {
	return &Stack[T]{data: make([]T, 0, n)}
}

// Push appends v on top of the stack.
// Time Complexity: O(1) amortized.
func (s *Stack[T]) Push(v T) {
	s.data = append(s.data, v)
}

// Pop removes and returns the top element.
// Returns ErrEmptyStack if the stack is empty.
// Time Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.data) == 0 {
		return zero, ErrEmptyStack
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]

	return v, nil
}

// Peek returns the top element without removing it.
// Returns ErrEmptyStack if the stack is empty.
// Time Complexity: O(1).
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if len(s.data) == 0 {
		return zero, ErrEmptyStack
	}

	return s.data[len(s.data)-1], nil
}

// Len reports the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.data)
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return len(s.data) == 0
}

// Clone returns an independent copy of the stack.
// Time Complexity: O(n).
func (s *Stack[T]) Clone() *Stack[T] {
	out := &Stack[T]{data: make([]T, len(s.data))}
	copy(out.data, s.data)

	return out
}
