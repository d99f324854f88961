package unescape

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dshills/splice/buffer"
	"github.com/dshills/splice/rewrite"
)

// Array parses the buffer's content as a JSON array of strings and decodes
// every element in place, without allocating storage for the decoded text.
// The returned strings are zero-copy views into the buffer; they are valid
// until the buffer is mutated again.
//
// Parsing stops after the array's closing bracket; trailing content is left
// unconsumed. After a successful call the buffer still has its full length,
// with escape savings rendered as spaces between elements.
func Array(b *buffer.Buffer) ([]string, error) {
	var values []string

	err := rewrite.Do(b, func(rw *rewrite.Rewriter) error {
		pos := func() int { return b.Len() - rw.Len() }

		if r, ok := rw.SkipRune(); !ok || r != '[' {
			return fmt.Errorf("byte %d: %w: expected '['", pos(), ErrSyntax)
		}

		skipWhitespace(rw)
		if r, ok := rw.Peek(); ok && r == ']' {
			rw.SkipRune()
			return nil
		}

		for {
			if r, ok := rw.SkipRune(); !ok || r != '"' {
				return fmt.Errorf("byte %d: %w: expected string", pos(), ErrSyntax)
			}

			value, err := decodeString(rw, pos)
			if err != nil {
				return err
			}
			values = append(values, value)

			skipWhitespace(rw)
			r, ok := rw.SkipRune()
			switch {
			case !ok:
				return fmt.Errorf("byte %d: %w: expected ',' or ']'", pos(), ErrSyntax)
			case r == ']':
				return nil
			case r == ',':
				skipWhitespace(rw)
			default:
				return fmt.Errorf("byte %d: %w: expected ',' or ']'", pos(), ErrSyntax)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// skipWhitespace copies JSON whitespace through the cursor.
func skipWhitespace(rw *rewrite.Rewriter) {
	for {
		r, ok := rw.Peek()
		if !ok || (r != ' ' && r != '\t' && r != '\n' && r != '\r') {
			return
		}
		rw.SkipRune()
	}
}

// decodeString decodes one string body through the cursor. The opening quote
// has already been consumed; on return the closing quote has been rewritten
// and the decoded body detached as a view.
func decodeString(rw *rewrite.Rewriter, pos func() int) (string, error) {
	// Drop everything written so far, including the opening quote, so the
	// detached prefix holds exactly the decoded body.
	rw.TakePrefix()

	for {
		r, ok := rw.ReadRune()
		if !ok {
			return "", fmt.Errorf("byte %d: %w", pos(), ErrUnterminatedString)
		}

		switch r {
		case '"':
			value := rw.TakePrefix()
			if err := rw.WriteRune('"'); err != nil {
				return "", err
			}
			return value, nil
		case '\\':
			decoded, err := readEscape(rw, pos)
			if err != nil {
				return "", err
			}
			if err := rw.WriteRune(decoded); err != nil {
				return "", err
			}
		default:
			if err := rw.WriteRune(r); err != nil {
				return "", err
			}
		}
	}
}

// readEscape consumes the remainder of an escape sequence whose backslash
// has already been read and returns the decoded rune.
func readEscape(rw *rewrite.Rewriter, pos func() int) (rune, error) {
	r, ok := rw.ReadRune()
	if !ok {
		return 0, fmt.Errorf("byte %d: %w: input ends after backslash", pos(), ErrBadEscape)
	}

	switch r {
	case '"', '\\', '/':
		return r, nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		return readUnicodeEscape(rw, pos)
	default:
		return 0, fmt.Errorf("byte %d: %w: \\%c", pos(), ErrBadEscape, r)
	}
}

// readUnicodeEscape consumes the XXXX of a \uXXXX sequence, plus a following
// low surrogate escape when the first unit is a high surrogate.
func readUnicodeEscape(rw *rewrite.Rewriter, pos func() int) (rune, error) {
	u1, err := readHex4(rw, pos)
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(u1) {
		return u1, nil
	}

	if r, ok := rw.ReadRune(); !ok || r != '\\' {
		return 0, fmt.Errorf("byte %d: %w: unpaired surrogate \\u%04x", pos(), ErrBadEscape, u1)
	}
	if r, ok := rw.ReadRune(); !ok || r != 'u' {
		return 0, fmt.Errorf("byte %d: %w: unpaired surrogate \\u%04x", pos(), ErrBadEscape, u1)
	}
	u2, err := readHex4(rw, pos)
	if err != nil {
		return 0, err
	}

	r := utf16.DecodeRune(u1, u2)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("byte %d: %w: invalid surrogate pair \\u%04x\\u%04x", pos(), ErrBadEscape, u1, u2)
	}
	return r, nil
}

// readHex4 consumes four hex digits from the cursor.
func readHex4(rw *rewrite.Rewriter, pos func() int) (rune, error) {
	var v rune
	for i := 0; i < 4; i++ {
		r, ok := rw.ReadRune()
		if !ok {
			return 0, fmt.Errorf("byte %d: %w: truncated \\u escape", pos(), ErrBadEscape)
		}
		switch {
		case r >= '0' && r <= '9':
			v = v<<4 | (r - '0')
		case r >= 'a' && r <= 'f':
			v = v<<4 | (r - 'a' + 10)
		case r >= 'A' && r <= 'F':
			v = v<<4 | (r - 'A' + 10)
		default:
			return 0, fmt.Errorf("byte %d: %w: bad hex digit %q", pos(), ErrBadEscape, r)
		}
	}
	return v, nil
}
