package synclist

// linked is a doubly linked list.
type linked[T any] struct {
	first *node[T]
	last  *node[T]
	size  int
}

type node[T any] struct {
	val  T
	prev *node[T]
	next *node[T]
}

// find walks from whichever end is nearer to index. It returns nil when
// index == size, which insertBefore treats as the back of the list.
func (l *linked[T]) find(index int) (n *node[T]) {
	if index >= l.size {
		return nil
	}
	if index < l.size/2 {
		n = l.first
		for i := 0; i < index; i++ {
			n = n.next
		}
	} else {
		n = l.last
		for i := l.size - 1; i > index; i-- {
			n = n.prev
		}
	}
	return n
}

// insertBefore splices a new node in front of p; a nil p appends.
func (l *linked[T]) insertBefore(p *node[T], val T) {
	n := &node[T]{val: val}
	if p == nil {
		n.prev = l.last
		if l.last == nil {
			l.first = n
		} else {
			l.last.next = n
		}
		l.last = n
		l.size++
		return
	}
	n.prev = p.prev
	n.next = p
	if p.prev == nil {
		l.first = n
	} else {
		p.prev.next = n
	}
	p.prev = n
	l.size++
}

func (l *linked[T]) removeNode(n *node[T]) {
	if n.prev == nil {
		l.first = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.last = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
	l.size--
}
