package unescape

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dshills/splice/buffer"
)

// Literal decodes the buffer's content as the body of a JSON string literal
// (without the surrounding quotes) and replaces the content with the decoded
// form in place. The decoded form is never longer than the escaped source,
// so it always fits; the buffer shrinks by the number of bytes the escapes
// saved.
//
// On error the buffer is left unchanged.
func Literal(b *buffer.Buffer) error {
	src := b.String()
	decoded, err := appendDecoded(make([]byte, 0, len(src)), src)
	if err != nil {
		return err
	}
	return b.Replace(decoded)
}

// appendDecoded appends the decoded form of a JSON string body to dst.
func appendDecoded(dst []byte, src string) ([]byte, error) {
	for i := 0; i < len(src); {
		c := src[i]
		if c != '\\' {
			_, size := utf8.DecodeRuneInString(src[i:])
			dst = append(dst, src[i:i+size]...)
			i += size
			continue
		}

		r, size, err := decodeEscape(src[i:])
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		dst = utf8.AppendRune(dst, r)
		i += size
	}
	return dst, nil
}

// decodeEscape decodes one escape sequence at the start of src (src[0] must
// be '\\'). Returns the decoded rune and the number of source bytes consumed.
func decodeEscape(src string) (rune, int, error) {
	if len(src) < 2 {
		return 0, 0, fmt.Errorf("%w: input ends after backslash", ErrBadEscape)
	}

	switch src[1] {
	case '"':
		return '"', 2, nil
	case '\\':
		return '\\', 2, nil
	case '/':
		return '/', 2, nil
	case 'b':
		return '\b', 2, nil
	case 'f':
		return '\f', 2, nil
	case 'n':
		return '\n', 2, nil
	case 'r':
		return '\r', 2, nil
	case 't':
		return '\t', 2, nil
	case 'u':
		return decodeUnicodeEscape(src)
	default:
		return 0, 0, fmt.Errorf("%w: \\%c", ErrBadEscape, src[1])
	}
}

// decodeUnicodeEscape decodes a \uXXXX sequence, consuming a following low
// surrogate escape when the first unit is a high surrogate.
func decodeUnicodeEscape(src string) (rune, int, error) {
	u1, err := hex4(src[2:])
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(u1) {
		return u1, 6, nil
	}

	// A high surrogate must be completed by a low surrogate escape.
	if len(src) < 12 || src[6] != '\\' || src[7] != 'u' {
		return 0, 0, fmt.Errorf("%w: unpaired surrogate \\u%04x", ErrBadEscape, u1)
	}
	u2, err := hex4(src[8:])
	if err != nil {
		return 0, 0, err
	}
	r := utf16.DecodeRune(u1, u2)
	if r == utf8.RuneError {
		return 0, 0, fmt.Errorf("%w: invalid surrogate pair \\u%04x\\u%04x", ErrBadEscape, u1, u2)
	}
	return r, 12, nil
}

// hex4 parses four hex digits into a rune value.
func hex4(src string) (rune, error) {
	if len(src) < 4 {
		return 0, fmt.Errorf("%w: truncated \\u escape", ErrBadEscape)
	}
	var v rune
	for i := 0; i < 4; i++ {
		c := src[i]
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			v = v<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v<<4 | rune(c-'A'+10)
		default:
			return 0, fmt.Errorf("%w: bad hex digit %q", ErrBadEscape, c)
		}
	}
	return v, nil
}
