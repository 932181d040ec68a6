package synclist

// bounded is a fixed-capacity array with an explicit logical length.  The
// backing slice is allocated once and never grows.
type bounded[T any] struct {
	items []T
	size  int
}

func makeBounded[T any](capacity int) bounded[T] {
	return bounded[T]{items: make([]T, capacity)}
}

func (b *bounded[T]) capacity() int {
	return len(b.items)
}

func (b *bounded[T]) full() bool {
	return b.size >= len(b.items)
}

// insert shifts every element from offset onwards one slot toward the back
// before writing item. The caller has checked capacity and offset.
func (b *bounded[T]) insert(offset int, item T) {
	copy(b.items[offset+1:b.size+1], b.items[offset:b.size])
	b.items[offset] = item
	b.size++
}

// remove shifts every element after offset one slot toward the front.
func (b *bounded[T]) remove(offset int) {
	copy(b.items[offset:b.size-1], b.items[offset+1:b.size])
	b.size--
	var zero T
	b.items[b.size] = zero
}
