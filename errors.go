package smallmap

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned by Find when a key is absent.
	ErrNotFound = errors.New("key not found")

	// ErrFull is returned by a bounded container which cannot take another key.
	ErrFull = errors.New("container is full")

	// ErrEncodingExhausted is returned when two distinct keys cannot be told apart
	// within the representable key positions.
	ErrEncodingExhausted = errors.New("keys are indistinguishable within the encoding range")
)
