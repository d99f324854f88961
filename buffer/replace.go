package buffer

import "unicode/utf8"

// Replace overwrites the buffer's content with content, in place. The new
// content must be valid UTF-8 and no longer than the current content; the
// buffer's length shrinks to len(content) and its storage identity is
// unchanged. No allocation occurs.
//
// On ErrCapacityExceeded or ErrInvalidUTF8 the buffer is left byte-for-byte
// unchanged; validation completes before any write.
//
// Bytes beyond the new length become slack: they keep whatever value they
// had and are never read again.
func (b *Buffer) Replace(content []byte) error {
	if len(content) > b.length {
		return ErrCapacityExceeded
	}
	if !utf8.Valid(content) {
		return ErrInvalidUTF8
	}

	copy(b.data, content)
	b.length = len(content)
	b.revision = NewRevisionID()

	return nil
}

// ReplaceString is Replace for string content.
func (b *Buffer) ReplaceString(s string) error {
	if len(s) > b.length {
		return ErrCapacityExceeded
	}
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}

	copy(b.data, s)
	b.length = len(s)
	b.revision = NewRevisionID()

	return nil
}
