package rewrite

import "errors"

// Errors returned by rewriter operations.
var (
	// ErrNoSpace indicates a write does not fit in the gap between the
	// write and read cursors.
	ErrNoSpace = errors.New("no space before read cursor")

	// ErrInvalidRune indicates an attempt to write a rune that has no
	// UTF-8 encoding (a surrogate or out-of-range value).
	ErrInvalidRune = errors.New("rune has no UTF-8 encoding")

	// ErrInvalidUTF8 indicates the rewritten region failed the final
	// UTF-8 verification.
	ErrInvalidUTF8 = errors.New("rewritten region is not valid UTF-8")
)
