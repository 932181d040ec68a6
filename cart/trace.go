package cart

import (
	"fmt"
	"io"
	"strings"
)

const (
	columnWidth = 25
	margin      = 21
)

// Labels are the column headings of a trace, in broken, working, spare order.
var Labels = [3]string{"Broken Cart", "Working Cart", "Spare Cart"}

// Tracer renders the three carts side by side after each move, top items on
// the highest row.
type Tracer[T any] struct {
	w    io.Writer
	name func(T) string
}

// NewTracer returns a tracer writing to w; name renders one item.
func NewTracer[T any](w io.Writer, name func(T) string) *Tracer[T] {
	return &Tracer[T]{w: w, name: name}
}

// Observe implements Observer.
func (t *Tracer[T]) Observe(moves int, broken, working, spare *Stack[T]) {
	carts := [3][]T{broken.Items(), working.Items(), spare.Items()}
	var sb strings.Builder

	fmt.Fprintf(&sb, "After %3d moves:     ", moves)
	for _, label := range Labels {
		fmt.Fprintf(&sb, "%-25.25s", label)
	}
	sb.WriteString("\n" + strings.Repeat(" ", margin) + strings.Repeat("-", columnWidth*len(carts)) + "\n")

	tallest := max(len(carts[0]), len(carts[1]), len(carts[2]))
	for height := tallest; height > 0; height-- {
		sb.WriteString(strings.Repeat(" ", margin))
		for _, cart := range carts {
			if len(cart) < height {
				sb.WriteString(strings.Repeat(" ", columnWidth))
				continue
			}
			sb.WriteString(cell(t.name(cart[height-1])))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(" ", margin) + strings.Repeat("=", columnWidth*len(carts)) + "\n\n\n\n\n\n\n")
	_, _ = io.WriteString(t.w, sb.String())
}

// cell pads name to a column, shortening names longer than 24 characters.
func cell(name string) string {
	runes := []rune(name)
	if len(runes) > columnWidth-1 {
		return string(runes[:columnWidth-4]) + "... "
	}
	return fmt.Sprintf("%-25s", name)
}
