package rewrite

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/splice/buffer"
	"github.com/dshills/splice/internal/bytesconv"
	"github.com/dshills/splice/internal/grapheme"
)

// Rewriter is a read/write cursor over a buffer's valid content. Reads
// consume text ahead of the write cursor; writes fill the space the reads
// have vacated. Writes can never pass reads, so the transformation stays
// in place without clobbering unconsumed input.
type Rewriter struct {
	region []byte // active region of the buffer's storage
	read   int    // next byte to consume; write <= read <= len(region)
	write  int    // next byte to produce
}

// New creates a rewriter over the buffer's current content. The caller must
// call Finish when done; Do handles that automatically.
func New(b *buffer.Buffer) *Rewriter {
	return &Rewriter{region: b.Bytes()}
}

// Do runs fn with a rewriter over the buffer and finishes the rewriter on
// the way out, even when fn fails. The error from fn takes precedence over
// the finishing error.
func Do(b *buffer.Buffer, fn func(*Rewriter) error) error {
	rw := New(b)
	err := fn(rw)
	if ferr := rw.Finish(); err == nil {
		err = ferr
	}
	return err
}

// Remainder returns the unconsumed tail as a zero-copy view. The view is
// valid until the next mutation of the underlying buffer.
func (rw *Rewriter) Remainder() string {
	return bytesconv.String(rw.region[rw.read:])
}

// Len returns the number of unconsumed bytes.
func (rw *Rewriter) Len() int {
	return len(rw.region) - rw.read
}

// Peek returns the next rune without consuming it.
func (rw *Rewriter) Peek() (rune, bool) {
	if rw.read >= len(rw.region) {
		return 0, false
	}
	r, _ := utf8.DecodeRune(rw.region[rw.read:])
	return r, true
}

// ReadRune consumes and returns the next rune.
func (rw *Rewriter) ReadRune() (rune, bool) {
	if rw.read >= len(rw.region) {
		return 0, false
	}
	r, size := utf8.DecodeRune(rw.region[rw.read:])
	rw.read += size
	return r, true
}

// WriteRune encodes r into the gap between the write and read cursors.
// Returns ErrNoSpace if the encoding does not fit and ErrInvalidRune if r
// cannot be encoded as UTF-8.
func (rw *Rewriter) WriteRune(r rune) error {
	size := utf8.RuneLen(r)
	if size < 0 {
		return ErrInvalidRune
	}
	if size > rw.read-rw.write {
		return ErrNoSpace
	}
	utf8.EncodeRune(rw.region[rw.write:rw.read], r)
	rw.write += size
	return nil
}

// WriteString copies s into the gap. Returns ErrNoSpace if s does not fit
// and ErrInvalidUTF8 if s is not well-formed.
func (rw *Rewriter) WriteString(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	if len(s) > rw.read-rw.write {
		return ErrNoSpace
	}
	copy(rw.region[rw.write:rw.read], s)
	rw.write += len(s)
	return nil
}

// SkipRune consumes the next rune and writes it back unchanged.
func (rw *Rewriter) SkipRune() (rune, bool) {
	r, ok := rw.ReadRune()
	if !ok {
		return 0, false
	}
	// The gap is at least as large as what was just read.
	_ = rw.WriteRune(r)
	return r, true
}

// PeekGrapheme returns the next grapheme cluster without consuming it.
func (rw *Rewriter) PeekGrapheme() (string, bool) {
	cluster, n := grapheme.First(rw.Remainder())
	if n == 0 {
		return "", false
	}
	return cluster, true
}

// ReadGrapheme consumes and returns the next grapheme cluster. The returned
// string is a copy and remains valid across later writes.
func (rw *Rewriter) ReadGrapheme() (string, bool) {
	cluster, n := grapheme.First(rw.Remainder())
	if n == 0 {
		return "", false
	}
	cluster = strings.Clone(cluster)
	rw.read += n
	return cluster, true
}

// SkipGrapheme consumes the next grapheme cluster and writes it back
// unchanged, keeping multi-rune clusters intact.
func (rw *Rewriter) SkipGrapheme() (string, bool) {
	cluster, ok := rw.ReadGrapheme()
	if !ok {
		return "", false
	}
	_ = rw.WriteString(cluster)
	return cluster, true
}

// TakePrefix detaches everything written so far as a zero-copy view and
// rebases the rewriter on the rest of the region. The view aliases the
// buffer's storage; it stays valid because later writes land strictly after
// the detached prefix.
func (rw *Rewriter) TakePrefix() string {
	prefix := bytesconv.String(rw.region[:rw.write])
	rw.region = rw.region[rw.write:]
	rw.read -= rw.write
	rw.write = 0
	return prefix
}

// Gap returns the bytes between the write and read cursors. Their content
// is whatever earlier reads left behind.
func (rw *Rewriter) Gap() []byte {
	return rw.region[rw.write:rw.read]
}

// Sync space-fills the gap and advances the write cursor to the read
// cursor, making the region contiguous valid UTF-8 again.
func (rw *Rewriter) Sync() {
	gap := rw.Gap()
	for i := range gap {
		gap[i] = ' '
	}
	rw.write = rw.read
}

// Finish syncs the rewriter and verifies the active region is valid UTF-8.
// Returns ErrInvalidUTF8 if a write sequence corrupted the region.
func (rw *Rewriter) Finish() error {
	rw.Sync()
	if !utf8.Valid(rw.region) {
		return ErrInvalidUTF8
	}
	return nil
}
