package buffer

import (
	"sync/atomic"
	"unicode/utf8"

	"github.com/google/uuid"
)

// RevisionID identifies a buffer revision. Each successful mutation
// produces a new revision.
type RevisionID uint64

// revisionCounter generates process-unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
// This is thread-safe using atomic operations.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

// Buffer is an owned byte region interpreted as UTF-8 text. Its capacity is
// fixed at creation; its length only shrinks. The first Len() bytes are
// always valid UTF-8.
//
// Buffer is not internally synchronized. Mutating methods require exclusive
// access for their duration; see the package documentation.
type Buffer struct {
	data     []byte // full original storage; len(data) == Cap()
	length   int    // current valid content length
	id       uuid.UUID
	revision RevisionID
}

// NewFromString creates a buffer whose storage is a private copy of s.
// Capacity and length both start at len(s).
func NewFromString(s string) *Buffer {
	data := make([]byte, len(s))
	copy(data, s)
	return &Buffer{
		data:     data,
		length:   len(data),
		id:       uuid.New(),
		revision: NewRevisionID(),
	}
}

// NewFromBytes creates a buffer that takes ownership of b without copying.
// The caller must not use b afterwards. Returns ErrInvalidUTF8 if b is not
// well-formed UTF-8.
func NewFromBytes(b []byte) (*Buffer, error) {
	if !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}
	return &Buffer{
		data:     b,
		length:   len(b),
		id:       uuid.New(),
		revision: NewRevisionID(),
	}, nil
}

// String returns the current content as a string. The result is a copy and
// remains valid across later mutations.
func (b *Buffer) String() string {
	return string(b.data[:b.length])
}

// Bytes returns the valid content prefix. The slice aliases the buffer's
// storage and is invalidated by the next mutation; callers must not modify
// it or hold it across a Replace.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.length]
}

// Len returns the current content length in bytes.
func (b *Buffer) Len() int {
	return b.length
}

// Cap returns the buffer's storage size, fixed at creation.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Slack returns the number of unreachable bytes between the current length
// and the original capacity. Slack content is unspecified and never read.
func (b *Buffer) Slack() int {
	return len(b.data) - b.length
}

// IsEmpty returns true if the buffer holds no content.
func (b *Buffer) IsEmpty() bool {
	return b.length == 0
}

// ID returns the buffer's storage identity, assigned once at creation.
// It is unchanged by every mutation; two buffers never share an ID.
func (b *Buffer) ID() uuid.UUID {
	return b.id
}

// Revision returns the current revision ID.
func (b *Buffer) Revision() RevisionID {
	return b.revision
}
