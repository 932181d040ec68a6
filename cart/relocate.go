package cart

import "errors"

// ErrNotEmpty indicates the destination of a relocation already holds items.
var ErrNotEmpty = errors.New("destination cart is not empty")

// Observer is notified before the first move and after every move.  broken,
// working and spare always refer to the carts given to Relocate and its
// internal spare, whatever role the recursion currently gives them.
type Observer[T any] func(moves int, broken, working, spare *Stack[T])

// Relocate moves every item of from onto to, preserving their order, through a
// temporary spare cart, and returns the number of moves made.
func Relocate[T any](from, to *Stack[T], observe Observer[T]) (int, error) {
	if !to.Empty() {
		return 0, ErrNotEmpty
	}
	r := &relocation[T]{broken: from, working: to, spare: NewStack[T](), observe: observe}
	r.notify()
	if from.Len() > 0 {
		r.move(from.Len(), from, to, r.spare)
	}
	return r.moves, nil
}

type relocation[T any] struct {
	broken, working, spare *Stack[T]
	moves                  int
	observe                Observer[T]
}

func (r *relocation[T]) move(quantity int, src, dst, spare *Stack[T]) {
	if quantity == 1 {
		r.step(src, dst)
		return
	}
	r.move(quantity-1, src, spare, dst)
	r.step(src, dst)
	r.move(quantity-1, spare, dst, src)
}

func (r *relocation[T]) step(src, dst *Stack[T]) {
	item, _ := src.Pop()
	dst.Push(item)
	r.moves++
	r.notify()
}

func (r *relocation[T]) notify() {
	if r.observe != nil {
		r.observe(r.moves, r.broken, r.working, r.spare)
	}
}
