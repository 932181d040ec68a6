package synclist

// forward is a singly linked list. head is a sentinel that plays the role of
// the position before the first element, so insertion and removal are always
// expressed relative to a predecessor.
type forward[T any] struct {
	head fnode[T]
}

type fnode[T any] struct {
	val  T
	next *fnode[T]
}

// before walks forward from the sentinel to the node preceding offset.
func (f *forward[T]) before(offset int) *fnode[T] {
	p := &f.head
	for i := 0; i < offset; i++ {
		p = p.next
	}
	return p
}

func (f *forward[T]) insertAfter(p *fnode[T], val T) {
	p.next = &fnode[T]{val: val, next: p.next}
}

func (f *forward[T]) eraseAfter(p *fnode[T]) {
	victim := p.next
	p.next = victim.next
	victim.next = nil
}

func (f *forward[T]) front() *fnode[T] {
	return f.head.next
}

// length counts nodes; the list keeps no size field.
func (f *forward[T]) length() int {
	n := 0
	for p := f.head.next; p != nil; p = p.next {
		n++
	}
	return n
}
