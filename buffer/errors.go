package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every *OutOfRangeError.
	ErrOutOfRange = errors.New("buffer: coordinate out of range")
	// ErrSizeMismatch is returned by New when the backing region is too short.
	ErrSizeMismatch = errors.New("buffer: backing region too small")
	// ErrInvalidDimensions is returned by New for negative sizes or padding.
	ErrInvalidDimensions = errors.New("buffer: invalid dimensions")
)

// OutOfRangeError reports an access outside [0,Width) x [0,Height).
type OutOfRangeError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("buffer: (%d, %d) outside %dx%d", e.X, e.Y, e.Width, e.Height)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
