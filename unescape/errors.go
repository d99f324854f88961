package unescape

import "errors"

// Errors returned by unescape operations.
var (
	// ErrSyntax indicates input that is not a JSON array of strings.
	ErrSyntax = errors.New("invalid JSON string array syntax")

	// ErrUnterminatedString indicates input ended inside a string literal.
	ErrUnterminatedString = errors.New("unterminated string literal")

	// ErrBadEscape indicates a malformed escape sequence.
	ErrBadEscape = errors.New("malformed escape sequence")
)
