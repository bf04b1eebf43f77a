package dynarray

import (
	"errors"
	"fmt"
)

// Domain errors for list operations.
var (
	// ErrNullArgument indicates a required collection or slice argument was absent.
	ErrNullArgument = errors.New("dynarray: argument is nil")

	// ErrInvalidArgument indicates a numeric argument outside its domain.
	ErrInvalidArgument = errors.New("dynarray: invalid argument")

	// ErrIndexOutOfRange indicates a positional access outside the permitted range.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrConcurrentModification indicates the list was structurally
	// modified after an iterator took its snapshot.
	ErrConcurrentModification = errors.New("dynarray: list modified during iteration")

	// ErrNoElement indicates an iterator was advanced past the last element.
	ErrNoElement = errors.New("dynarray: no more elements")
)

// IndexError reports the offending index and the permitted range [Low, High].
type IndexError struct {
	Index int
	Low   int
	High  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d is out of range, permissible value from %d to %d", e.Index, e.Low, e.High)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func nullArgument(what string) error {
	return fmt.Errorf("%w: the specified %s is nil", ErrNullArgument, what)
}
