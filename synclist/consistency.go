package synclist

// Consistent reports whether the four representations hold the same number of
// items and equal items at every offset.  It neither allocates nor mutates.
func (l *List[T]) Consistent() bool {
	size := l.array.size
	if size != len(l.vector) || size != l.dll.size || size != l.sll.length() {
		return false
	}
	dll := l.dll.first
	sll := l.sll.front()
	for i, item := range l.vector {
		if dll == nil || sll == nil {
			return false
		}
		if !l.array.items[i].Equal(item) || !dll.val.Equal(item) || !sll.val.Equal(item) {
			return false
		}
		dll = dll.next
		sll = sll.next
	}
	return dll == nil && sll == nil
}

// Validate returns an ErrInvalidInternalState error when the list is not
// consistent.
func (l *List[T]) Validate() error {
	if !l.Consistent() {
		return newError("validate", -1, ErrInvalidInternalState)
	}
	return nil
}

func (l *List[T]) mustBeConsistent(op string) {
	if !l.Consistent() {
		panic(newError(op, -1, ErrInvalidInternalState))
	}
}
