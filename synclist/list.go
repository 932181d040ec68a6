package synclist

import (
	"fmt"
	"slices"
)

// DefaultCapacity is the size of the bounded representation when no
// WithCapacity option is given.
const DefaultCapacity = 11

// Item is the capability set the list needs from its elements.
type Item[T any] interface {
	// Equal is the identity relation used for uniqueness and Find.
	Equal(other T) bool
	// Compare returns a negative number, zero or a positive number when the
	// receiver orders before, equal to or after other.
	Compare(other T) int
	fmt.Stringer
}

// Position names the two ends of the list for InsertAt.
type Position int

const (
	Top Position = iota
	Bottom
)

func (p Position) String() string {
	switch p {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

type options struct {
	capacity int
}

// Option configures a List at construction time.
type Option func(*options)

// WithCapacity sets the capacity of the bounded representation. Values below
// one are ignored.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		if capacity > 0 {
			o.capacity = capacity
		}
	}
}

// List is an ordered collection of unique items kept in four synchronised
// representations. A List is not safe for concurrent use.
type List[T Item[T]] struct {
	array  bounded[T]
	vector []T
	dll    linked[T]
	sll    forward[T]
}

// New returns an empty list.
func New[T Item[T]](opts ...Option) *List[T] {
	o := &options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(o)
	}
	return &List[T]{
		array:  makeBounded[T](o.capacity),
		vector: make([]T, 0, o.capacity),
	}
}

// From returns a list holding items in order, duplicates collapsed to their
// first occurrence.
func From[T Item[T]](items []T, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if err := l.Append(items...); err != nil {
		return nil, err
	}
	return l, nil
}

// Capacity returns the maximum number of items the list can hold.
func (l *List[T]) Capacity() int {
	return l.array.capacity()
}

// Size returns the number of items.
func (l *List[T]) Size() int {
	l.mustBeConsistent("size")
	return len(l.vector)
}

// Find returns the offset of the item equal to item, or Size() when there is
// none.
func (l *List[T]) Find(item T) int {
	l.mustBeConsistent("find")
	return l.find(item)
}

func (l *List[T]) find(item T) int {
	for i, candidate := range l.vector {
		if candidate.Equal(item) {
			return i
		}
	}
	return len(l.vector)
}

// IndexFunc returns the offset of the first item satisfying match, or Size()
// when there is none.
func (l *List[T]) IndexFunc(match func(T) bool) int {
	l.mustBeConsistent("index")
	for i, candidate := range l.vector {
		if match(candidate) {
			return i
		}
	}
	return len(l.vector)
}

// At returns the item at offset.
func (l *List[T]) At(offset int) (T, bool) {
	l.mustBeConsistent("at")
	if offset < 0 || offset >= len(l.vector) {
		var zero T
		return zero, false
	}
	return l.vector[offset], true
}

// Items returns a copy of the items, front to back.
func (l *List[T]) Items() []T {
	l.mustBeConsistent("items")
	return slices.Clone(l.vector)
}

// ForEach visits items front to back until consumer returns false.  The list
// must not be modified from within consumer.
func (l *List[T]) ForEach(consumer func(offset int, item T) bool) {
	l.mustBeConsistent("for each")
	i := 0
	for n := l.sll.front(); n != nil; n = n.next {
		if !consumer(i, n.val) {
			return
		}
		i++
	}
}

// InsertAt inserts item at the top or the bottom of the list.
func (l *List[T]) InsertAt(item T, pos Position) (bool, error) {
	switch pos {
	case Top:
		return l.Insert(item, 0)
	case Bottom:
		if !l.Consistent() {
			return false, newError("insert", -1, ErrInvalidInternalState)
		}
		return l.Insert(item, len(l.vector))
	}
	return false, newError("insert "+pos.String(), -1, ErrInvalidPosition)
}

// Insert places item so that it becomes the element at offset, shifting the
// elements at or after offset toward the back.  An offset equal to the size
// appends.  When an equal item is already present nothing changes and Insert
// reports false with a nil error.
func (l *List[T]) Insert(item T, offset int) (bool, error) {
	if !l.Consistent() {
		return false, newError("insert", offset, ErrInvalidInternalState)
	}
	size := len(l.vector)
	if offset < 0 || offset > size {
		return false, newError("insert", offset, ErrInvalidOffset)
	}
	if l.find(item) != size {
		return false, nil
	}
	if l.array.full() {
		return false, newError("insert", offset, ErrCapacityExceeded)
	}

	// Locate the positional handles of the linked representations before
	// the first write so no representation is touched unless all can be.
	dllAt := l.dll.find(offset)
	sllPrev := l.sll.before(offset)

	l.array.insert(offset, item)
	l.vector = slices.Insert(l.vector, offset, item)
	l.dll.insertBefore(dllAt, item)
	l.sll.insertAfter(sllPrev, item)

	if !l.Consistent() {
		return true, newError("insert", offset, ErrInvalidInternalState)
	}
	return true, nil
}

// RemoveAt removes the item at offset.  Offsets outside the list are ignored.
func (l *List[T]) RemoveAt(offset int) error {
	if !l.Consistent() {
		return newError("remove", offset, ErrInvalidInternalState)
	}
	if offset < 0 || offset >= len(l.vector) {
		return nil
	}

	dllAt := l.dll.find(offset)
	sllPrev := l.sll.before(offset)

	l.array.remove(offset)
	l.vector = slices.Delete(l.vector, offset, offset+1)
	l.dll.removeNode(dllAt)
	l.sll.eraseAfter(sllPrev)

	if !l.Consistent() {
		return newError("remove", offset, ErrInvalidInternalState)
	}
	return nil
}

// Remove removes the item equal to item, if any.
func (l *List[T]) Remove(item T) error {
	if !l.Consistent() {
		return newError("remove", -1, ErrInvalidInternalState)
	}
	return l.RemoveAt(l.find(item))
}

// MoveToFront moves the item equal to item to offset zero, if present.
func (l *List[T]) MoveToFront(item T) error {
	if !l.Consistent() {
		return newError("move to front", -1, ErrInvalidInternalState)
	}
	offset := l.find(item)
	if offset == len(l.vector) {
		return nil
	}
	if err := l.RemoveAt(offset); err != nil {
		return err
	}
	_, err := l.Insert(item, 0)
	return err
}

// Append inserts items at the bottom in order.  Insertions that succeeded
// before a failure are kept.
func (l *List[T]) Append(items ...T) error {
	for _, item := range items {
		if _, err := l.InsertAt(item, Bottom); err != nil {
			return err
		}
	}
	if !l.Consistent() {
		return newError("append", -1, ErrInvalidInternalState)
	}
	return nil
}

// Merge appends the items of other, in order, at the bottom of l.
func (l *List[T]) Merge(other *List[T]) error {
	if !other.Consistent() {
		return newError("merge", -1, ErrInvalidInternalState)
	}
	return l.Append(slices.Clone(other.vector)...)
}

// Compare orders two lists lexicographically; when one is a prefix of the
// other the shorter orders first.
func (l *List[T]) Compare(other *List[T]) int {
	l.mustBeConsistent("compare")
	other.mustBeConsistent("compare")
	return slices.CompareFunc(l.vector, other.vector, func(a, b T) int { return a.Compare(b) })
}

// Equal reports whether both lists hold equal items in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	l.mustBeConsistent("equal")
	other.mustBeConsistent("equal")
	return slices.EqualFunc(l.vector, other.vector, func(a, b T) bool { return a.Equal(b) })
}
