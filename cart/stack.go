package cart

import "slices"

// Stack is a last-in first-out holding area.
type Stack[T any] struct {
	items []T
}

// NewStack returns a stack holding items, the last one on top.
func NewStack[T any](items ...T) *Stack[T] {
	return &Stack[T]{items: slices.Clone(items)}
}

func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top, true
}

// Top returns the top item without removing it.
func (s *Stack[T]) Top() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int { return len(s.items) }

func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Items returns a copy of the contents, bottom first.
func (s *Stack[T]) Items() []T {
	return slices.Clone(s.items)
}
