package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there are no symbols to encode.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidText is returned when the input text is not valid UTF-8.
	ErrInvalidText = errors.New("input is not valid UTF-8")

	// ErrTooLarge is returned when a size does not fit in the container's
	// 32-bit size fields.
	ErrTooLarge = errors.New("input too large for container")

	// ErrInvalidHeader is returned when the container's size fields are
	// missing or inconsistent.
	ErrInvalidHeader = errors.New("invalid container header")

	// ErrMalformedTree is returned when the serialized tree is truncated or
	// structurally inconsistent.
	ErrMalformedTree = errors.New("malformed Huffman tree")

	// ErrTruncatedPayload is returned when the payload runs out of bits
	// before the expected number of bytes has been decoded.
	ErrTruncatedPayload = errors.New("truncated payload")

	// ErrCorruptPayload is returned when the payload walks off the tree.
	ErrCorruptPayload = errors.New("corrupt payload")

	// ErrOutOfRange is returned by BitBuffer when reading past its end.
	ErrOutOfRange = errors.New("bit index out of range")

	// ErrIOFailure matches every *IOError.
	ErrIOFailure = errors.New("I/O failure")
)

// IOError records a failed read or write together with the path involved.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the string representation of this IOError.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrIOFailure) true for every *IOError.
func (e *IOError) Is(target error) bool {
	return target == ErrIOFailure
}

var _ error = (*IOError)(nil)
