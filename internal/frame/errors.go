package frame

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyTable      = fmt.Errorf("%w: table has no rows", ErrInvalidArgument)
	ErrUnknownColumn   = fmt.Errorf("%w: unknown column", ErrInvalidArgument)
)

// IndexError reports an access outside [0, Len).
type IndexError struct {
	What  string // "mapping" or "row"
	Index int
	Len   int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.What, e.Index, e.Len)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
