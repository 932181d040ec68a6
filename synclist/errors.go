package synclist

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

var (
	// ErrInvalidInternalState indicates the four representations no longer agree.
	ErrInvalidInternalState = errors.New("container consistency error")

	// ErrInvalidOffset indicates an insertion offset beyond the end of the list.
	ErrInvalidOffset = errors.New("insertion position beyond end of current list size")

	// ErrCapacityExceeded indicates the bounded representation is full.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidPosition indicates a Position other than Top or Bottom.
	ErrInvalidPosition = errors.New("unexpected insertion position")
)

// Error describes a failed list operation. It unwraps to one of the package
// sentinels and keeps the call stack of the place it was raised.
type Error struct {
	Op     string
	Offset int
	Err    error
	trace  *goerrors.Error
}

func newError(op string, offset int, err error) *Error {
	return &Error{Op: op, Offset: offset, Err: err, trace: goerrors.Wrap(err, 1)}
}

func (e *Error) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("synclist: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("synclist: %s at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorStack returns the error message followed by the stack of the goroutine
// that raised it.
func (e *Error) ErrorStack() string {
	if e.trace == nil {
		return e.Error()
	}
	return e.Error() + "\n" + string(e.trace.Stack())
}
