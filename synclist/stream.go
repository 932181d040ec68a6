package synclist

import (
	"fmt"
	"io"
	"strings"
)

// Source yields items one at a time. Next reports false once no further item
// is available, whether the input ended or could not be parsed.
type Source[T any] interface {
	Next() (T, bool)
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] func() (T, bool)

func (f SourceFunc[T]) Next() (T, bool) { return f() }

// Load appends every item yielded by src at the bottom and returns how many
// were inserted. Duplicates are skipped; an insertion error stops the load.
func (l *List[T]) Load(src Source[T]) (int, error) {
	if !l.Consistent() {
		return 0, newError("load", -1, ErrInvalidInternalState)
	}
	count := 0
	for {
		item, ok := src.Next()
		if !ok {
			return count, nil
		}
		inserted, err := l.InsertAt(item, Bottom)
		if err != nil {
			return count, err
		}
		if inserted {
			count++
		}
	}
}

// WriteTo renders each item on its own line prefixed with its offset.
func (l *List[T]) WriteTo(w io.Writer) (int64, error) {
	l.mustBeConsistent("write")
	var total int64
	for i, n := 0, l.sll.front(); n != nil; i, n = i+1, n.next {
		written, err := fmt.Fprintf(w, "\n%5d:  %s", i, n.val)
		total += int64(written)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (l *List[T]) String() string {
	var sb strings.Builder
	_, _ = l.WriteTo(&sb)
	return sb.String()
}
