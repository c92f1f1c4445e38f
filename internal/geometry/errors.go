package geometry

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds matches any *OutOfBoundsError with errors.Is.
var ErrOutOfBounds = errors.New("geometry: out of bounds")

// OutOfBoundsError reports the first coordinate that did not address a
// slot in the target buffer.
type OutOfBoundsError struct {
	X, Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("geometry: out of bounds: x: %d y: %d", e.X, e.Y)
}

// Is reports whether target is ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// IOError wraps an I/O failure that happened while moving a buffer in or
// out of storage. The drawing operations never return it.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("geometry: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("geometry: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
