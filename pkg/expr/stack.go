package expr

import "errors"

// ErrStackUnderflow is returned when popping or peeking an empty stack.
var ErrStackUnderflow = errors.New("stack underflow")

// stack is a LIFO used for both the operator and the value stack of the
// evaluator.
type stack[T any] struct {
	elems []T
}

func newStack[T any](capacity int) *stack[T] {
	return &stack[T]{elems: make([]T, 0, capacity)}
}

func (s *stack[T]) Push(elem T) {
	s.elems = append(s.elems, elem)
}

func (s *stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrStackUnderflow
	}
	top := s.elems[len(s.elems)-1]
	s.elems[len(s.elems)-1] = zero
	s.elems = s.elems[:len(s.elems)-1]
	return top, nil
}

func (s *stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrStackUnderflow
	}
	return s.elems[len(s.elems)-1], nil
}

func (s *stack[T]) Len() int {
	return len(s.elems)
}

func (s *stack[T]) IsEmpty() bool {
	return len(s.elems) == 0
}
