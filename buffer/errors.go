package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrCapacityExceeded indicates replacement content is longer than the
	// buffer's current length. The buffer is left untouched.
	ErrCapacityExceeded = errors.New("replacement exceeds buffer length")

	// ErrInvalidUTF8 indicates content failed UTF-8 validation. The buffer
	// is left untouched.
	ErrInvalidUTF8 = errors.New("content is not valid UTF-8")
)
